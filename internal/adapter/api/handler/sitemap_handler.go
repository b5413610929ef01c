package handler

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"portfolia/internal/usecase"
	"portfolia/pkg/response"
)

type SitemapHandler struct {
	articleUseCase *usecase.ArticleUseCase
	siteURL        string
}

func NewSitemapHandler(articleUseCase *usecase.ArticleUseCase, siteURL string) *SitemapHandler {
	return &SitemapHandler{
		articleUseCase: articleUseCase,
		siteURL:        siteURL,
	}
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

var staticPages = []sitemapURL{
	{Loc: "/", ChangeFreq: "weekly", Priority: "1.0"},
	{Loc: "/articles", ChangeFreq: "daily", Priority: "0.9"},
	{Loc: "/projects", ChangeFreq: "weekly", Priority: "0.8"},
	{Loc: "/donate", ChangeFreq: "monthly", Priority: "0.5"},
	{Loc: "/contact", ChangeFreq: "monthly", Priority: "0.5"},
}

// Sitemap serves sitemap.xml: static pages plus every published article.
func (h *SitemapHandler) Sitemap(c echo.Context) error {
	articles, err := h.articleUseCase.List(c.Request().Context(), true)
	if err != nil {
		return response.Error(c, err)
	}

	set := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]sitemapURL, 0, len(staticPages)+len(articles)),
	}
	for _, page := range staticPages {
		page.Loc = h.siteURL + page.Loc
		set.URLs = append(set.URLs, page)
	}
	for _, article := range articles {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        h.siteURL + "/articles/" + article.Slug,
			LastMod:    article.UpdatedAt.Format(time.RFC3339),
			ChangeFreq: "monthly",
			Priority:   "0.7",
		})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return response.Error(c, err)
	}
	return c.Blob(http.StatusOK, "application/xml", append([]byte(xml.Header), out...))
}
