package handler

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

type playSlide struct {
	Image string
	Text  template.HTML
}

// ShowPlay 渲染公开的播放页面
func (a *API) ShowPlay(c *gin.Context) {
	slug := c.Param("slug")
	show, err := a.slideshows.Get(slug)
	if err != nil {
		a.handleLoadError(c, slug, err)
		return
	}

	slides := make([]playSlide, 0, len(show.Slides))
	for _, slide := range show.Slides {
		text, err := renderMarkdown(slide.Text)
		if err != nil {
			a.logger.Warn("render slide text", "slug", slug, "error", err)
			text = template.HTML(template.HTMLEscapeString(slide.Text))
		}
		slides = append(slides, playSlide{Image: slide.Image, Text: text})
	}

	a.renderHTML(c, http.StatusOK, "play.html", gin.H{
		"title":  show.Title,
		"slides": slides,
		"total":  len(slides),
	})
}

func renderMarkdown(content string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	safe := sanitizer.SanitizeBytes(buf.Bytes())
	return template.HTML(safe), nil
}
