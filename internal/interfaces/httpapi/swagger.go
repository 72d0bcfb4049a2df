package httpapi

import (
	_ "embed"
	"html/template"
	"net/http"

	"github.com/valyala/bytebufferpool"
)

var (
	//go:embed openapi.yaml
	openAPIDocument []byte

	//go:embed docs.html
	docsPageSource string

	docsPage = template.Must(template.New("docs").Parse(docsPageSource))
)

type docsPageData struct {
	Title     string
	AssetBase string
	SpecURL   string
}

var defaultDocsPage = docsPageData{
	Title:     "Match Statistics API Docs",
	AssetBase: "https://unpkg.com/swagger-ui-dist@5",
	SpecURL:   "/openapi.yaml",
}

func (h *Handler) OpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
	if _, err := w.Write(openAPIDocument); err != nil {
		h.logger.WarnContext(r.Context(), "write openapi document failed", "error", err)
	}
}

func (h *Handler) SwaggerUI(w http.ResponseWriter, r *http.Request) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := docsPage.Execute(buf, defaultDocsPage); err != nil {
		h.logger.ErrorContext(r.Context(), "render docs page failed", "error", err)
		writeInternalError(r.Context(), w)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.B)
}
