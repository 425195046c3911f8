package main

import (
	"context"
	"flag"
	"fmt"
	"os"
)

func main() {
	// Command line flags
	numPosts := flag.Int("num-posts", -1, "number of posts to process, negative means all (mostly for debugging)")
	newRoot := flag.String("new-root", "", "root to use when constructing the url map, no slash at the end")
	frontAlias := flag.Bool("front-alias", false, "include the legacy path of published posts as a front matter alias")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: blogger2hugo [flags] BLOGGER_XML_FILE OUTPUT_FOLDER")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	app := &blogger2hugo{
		cfg: &config{
			bloggerFile:  flag.Arg(0),
			outputFolder: flag.Arg(1),
			numPosts:     *numPosts,
			newRoot:      *newRoot,
			frontAlias:   *frontAlias,
		},
		httpClient: newHttpClient(),
		urlMap:     &urlMap{},
	}

	if err := app.cfg.validate(); err != nil {
		app.logErrAndQuit("Invalid arguments", "error", err.Error())
		return
	}

	if err := app.run(context.Background()); err != nil {
		app.logErrAndQuit("Conversion failed", "error", err.Error())
		return
	}
}
