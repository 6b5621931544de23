// Package webfetch downloads a web page and converts it to Markdown so that
// route extraction can work from the page's actual content instead of asking
// the model to guess from a bare URL.
package webfetch
