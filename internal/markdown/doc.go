// Package markdown discovers post files on disk, decodes their front-matter,
// and renders Markdown bodies into HTML.
package markdown
