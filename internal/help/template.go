// Package help builds the markdown help shown in the editor overlay.
package help

// helpTemplate is the Go text/template for the help overlay.
const helpTemplate = `# binderclip {{.Version}}

Type anywhere. Lines rewrap to the window width as you go; breaks you
type with **Enter** stay put, the others move.

## Keys

| Key | Action |
| --- | --- |
{{range .Bindings}}| ` + "`{{.Keys}}`" + ` | {{.Desc}} |
{{end}}
## Font size

The font size ranges from **{{.MinFont}}** to **{{.MaxFont}}** px and
starts at **{{.StartFont}}**. The line width in characters is the panel
width divided by half the font size.
{{if .JournalDir}}
## Journal

This session is recorded under ` + "`{{.JournalDir}}`" + `.
{{end}}`
