package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testExport = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
	<entry>
		<title>My Post</title>
		<published>2019-03-26T09:00:00.000-07:00</published>
		<content type="html">&lt;p&gt;Hello &lt;b&gt;World&lt;/b&gt;&lt;/p&gt;</content>
		<author><name>Jane Doe</name></author>
		<category scheme="http://schemas.google.com/g/2005#kind" term="http://schemas.google.com/blogger/2008/kind#post"/>
		<category scheme="http://www.blogger.com/atom/ns#" term="go"/>
		<category scheme="http://www.blogger.com/atom/ns#" term="blog"/>
		<link rel="self" type="application/atom+xml" href="https://old.example/feeds/1/posts/default/2"/>
		<link rel="alternate" type="text/html" href="https://old.example/2019/03/my-post.html"/>
	</entry>
	<entry>
		<title>About me</title>
		<published>2018-01-02T10:00:00.000-07:00</published>
		<content type="html">&lt;p&gt;A page&lt;/p&gt;</content>
		<author><name>Jane Doe</name></author>
		<category scheme="http://schemas.google.com/g/2005#kind" term="http://schemas.google.com/blogger/2008/kind#page"/>
		<link rel="alternate" type="text/html" href="https://old.example/p/about.html"/>
	</entry>
	<entry>
		<title>Hello World</title>
		<published>2020-11-05T21:30:00.000+01:00</published>
		<content type="html">&lt;p&gt;Draft&lt;/p&gt;</content>
		<author><name>Jane Doe</name></author>
		<category scheme="http://schemas.google.com/g/2005#kind" term="http://schemas.google.com/blogger/2008/kind#post"/>
	</entry>
</feed>`

func writeTestExport(t *testing.T) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "blog.xml")
	require.NoError(t, os.WriteFile(file, []byte(testExport), 0666))
	return file
}

func Test_loadFeed(t *testing.T) {
	t.Run("Valid export", func(t *testing.T) {
		f, err := loadFeed(writeTestExport(t))
		require.NoError(t, err)
		assert.Len(t, f.Entries, 3)
	})

	t.Run("Not XML", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "blog.xml")
		require.NoError(t, os.WriteFile(file, []byte("not xml at all"), 0666))

		_, err := loadFeed(file)
		require.Error(t, err)
		assert.True(t, errorIsKind(err, errKindParse))
		assert.Contains(t, err.Error(), "exported Blogger XML file")
	})

	t.Run("Wrong root element", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "blog.xml")
		require.NoError(t, os.WriteFile(file, []byte("<rss></rss>"), 0666))

		_, err := loadFeed(file)
		require.Error(t, err)
		assert.True(t, errorIsKind(err, errKindParse))
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := loadFeed(filepath.Join(t.TempDir(), "missing.xml"))
		require.Error(t, err)
		assert.True(t, errorIsKind(err, errKindConfig))
	})
}

func Test_postEntries(t *testing.T) {
	f, err := loadFeed(writeTestExport(t))
	require.NoError(t, err)

	posts := postEntries(f)
	require.Len(t, posts, 2)
	// Document order, pages excluded
	assert.Equal(t, "My Post", posts[0].Title)
	assert.Equal(t, "Hello World", posts[1].Title)
}

func Test_entryAccessors(t *testing.T) {
	f, err := loadFeed(writeTestExport(t))
	require.NoError(t, err)
	posts := postEntries(f)
	require.Len(t, posts, 2)

	assert.Equal(t, []string{"go", "blog"}, posts[0].tags())
	assert.Equal(t, "https://old.example/2019/03/my-post.html", posts[0].alternateURL())
	assert.Equal(t, "Jane Doe", posts[0].AuthorName)
	assert.Equal(t, "<p>Hello <b>World</b></p>", posts[0].Content)

	assert.Empty(t, posts[1].tags())
	assert.Equal(t, "", posts[1].alternateURL())
}
