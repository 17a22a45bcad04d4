package http

import (
	"html/template"
)

// pageTemplate is the host page. The region is inserted as markup, the label as text.
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta http-equiv="refresh" content="{{.RefreshSeconds}}">
<title>{{.Title}}</title>
<style>
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; max-width: 640px; margin: 2rem auto; color: #0f1419; }
.tweet { border: 1px solid #eff3f4; border-radius: 12px; padding: 12px 16px; margin-bottom: 12px; }
.tweet-header .username, .tweet-time, #last-update { color: #536471; }
.tweet-text { margin: 8px 0; white-space: pre-wrap; }
.tweet-footer a { color: #1d9bf0; text-decoration: none; }
.no-tweets { color: #536471; text-align: center; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div id="{{.LabelID}}">{{.LastUpdate}}</div>
<div id="{{.RegionID}}">{{.TweetsHTML}}</div>
</body>
</html>
`))

type pageData struct {
	Title          string
	RefreshSeconds int
	RegionID       string
	LabelID        string
	TweetsHTML     template.HTML
	LastUpdate     string
}
