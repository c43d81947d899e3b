package converter

import (
	"html/template"
	"strings"
	"time"
)

// TimestampLayout is the footer stamp format, rendered in the
// server's local time zone.
const TimestampLayout = "2006-01-02 15:04:05"

type pageData struct {
	Title     string
	Content   template.HTML
	Timestamp string
}

// WrapPage wraps an HTML fragment in the fixed document template.
// The timestamp reflects the moment of conversion, not request time.
func WrapPage(title, fragment string, now time.Time) string {
	var sb strings.Builder

	// The fragment is pre-rendered HTML and the other fields are plain
	// strings; execution cannot fail on this data.
	_ = pageTemplate.Execute(&sb, pageData{
		Title:     title,
		Content:   template.HTML(fragment),
		Timestamp: now.Format(TimestampLayout),
	})

	return sb.String()
}

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<style>
    body {
        font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
        line-height: 1.6;
        color: #333;
        max-width: 800px;
        margin: 0 auto;
        padding: 20px;
        background-color: #f5f5f5;
    }
    .container {
        background-color: white;
        padding: 40px;
        border-radius: 8px;
        box-shadow: 0 2px 4px rgba(0,0,0,0.1);
    }
    h1, h2, h3, h4, h5, h6 {
        color: #2c3e50;
        margin-top: 24px;
        margin-bottom: 16px;
        font-weight: 600;
    }
    h1 { font-size: 2em; border-bottom: 2px solid #eee; padding-bottom: 10px; }
    h2 { font-size: 1.5em; border-bottom: 1px solid #eee; padding-bottom: 8px; }
    code {
        background-color: #f4f4f4;
        padding: 2px 6px;
        border-radius: 3px;
        font-family: 'Courier New', monospace;
        font-size: 0.9em;
    }
    pre {
        background-color: #f6f8fa;
        padding: 16px;
        border-radius: 6px;
        overflow-x: auto;
        border: 1px solid #e1e4e8;
    }
    pre code {
        background-color: transparent;
        padding: 0;
    }
    blockquote {
        border-left: 4px solid #ddd;
        padding-left: 20px;
        margin-left: 0;
        color: #666;
        font-style: italic;
    }
    table {
        border-collapse: collapse;
        width: 100%;
        margin: 20px 0;
    }
    table th, table td {
        border: 1px solid #ddd;
        padding: 12px;
        text-align: left;
    }
    table th {
        background-color: #f2f2f2;
        font-weight: 600;
    }
    a {
        color: #0366d6;
        text-decoration: none;
    }
    a:hover {
        text-decoration: underline;
    }
    img {
        max-width: 100%;
        height: auto;
    }
    ul, ol {
        padding-left: 30px;
    }
    li {
        margin: 8px 0;
    }
    hr {
        border: none;
        border-top: 2px solid #eee;
        margin: 30px 0;
    }
    .footer {
        margin-top: 40px;
        padding-top: 20px;
        border-top: 1px solid #eee;
        color: #666;
        font-size: 0.9em;
        text-align: center;
    }
</style>
</head>
<body>
    <div class="container">
        {{.Content}}
        <div class="footer">
            Generated on {{.Timestamp}}
        </div>
    </div>
</body>
</html>
`
