package main

import (
	"strconv"
	"strings"

	"github.com/jeremywohl/flatten"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

const frontMatterSep = "---\n"

// parseHugoFile reads a converted document back into its front matter
// and body. Used to verify that emitted documents round-trip.
func parseHugoFile(fileContent string) (*frontMatter, string, error) {
	raw := ""
	if split := strings.Split(fileContent, frontMatterSep); len(split) > 2 {
		raw = split[1]
	}
	body := strings.TrimPrefix(fileContent, frontMatterSep+raw+frontMatterSep)
	meta := map[string]interface{}{}
	if err := yaml.Unmarshal([]byte(raw), &meta); err != nil {
		return nil, "", parseError(err, "can not parse front matter")
	}
	flat, err := flatten.Flatten(meta, "", flatten.DotStyle)
	if err != nil {
		return nil, "", parseError(err, "can not flatten front matter")
	}
	fm := &frontMatter{
		Title:     cast.ToString(flat["title"]),
		Slug:      cast.ToString(flat["slug"]),
		Published: cast.ToString(flat["published"]),
		Author:    cast.ToString(flat["author"]),
		Tags:      flatStringList(flat, "tags"),
		Aliases:   flatStringList(flat, "aliases"),
	}
	return fm, body, nil
}

// flatStringList collects the values of a flattened list key ("tags.0",
// "tags.1", …) or of a single scalar with that key, keeping list order.
func flatStringList(flat map[string]interface{}, key string) []string {
	if value, ok := flat[key]; ok {
		return []string{cast.ToString(value)}
	}
	var values []string
	for i := 0; ; i++ {
		value, ok := flat[key+"."+strconv.Itoa(i)]
		if !ok {
			break
		}
		values = append(values, cast.ToString(value))
	}
	return values
}
