// Package view renders pages as layout + content template pairs.
package view

import (
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
	"sync"

	"github.com/bako110/pausemanager/internal/models"
)

var (
	baseDir = "templates"

	tplCache = struct {
		sync.RWMutex
		m map[string]*template.Template
	}{m: map[string]*template.Template{}}
)

// SetBaseDir points the renderer at the templates directory; tests use it to
// reach the repository templates from their package directory.
func SetBaseDir(dir string) {
	tplCache.Lock()
	baseDir = dir
	tplCache.m = map[string]*template.Template{}
	tplCache.Unlock()
}

var funcs = template.FuncMap{
	"statusLabel": func(v any) string { return models.TranslateStatus(fmt.Sprint(v)) },
}

// Render writes the named page wrapped in the shared layout.
func Render(w http.ResponseWriter, name string, data any) error {
	return RenderStatus(w, http.StatusOK, name, data)
}

// RenderStatus renders the page with an explicit status code. Headers are
// set before the status is written; callers must not call WriteHeader
// themselves.
func RenderStatus(w http.ResponseWriter, status int, name string, data any) error {
	tpl, err := load(name)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	return tpl.ExecuteTemplate(w, "layout", data)
}

func load(name string) (*template.Template, error) {
	tplCache.RLock()
	tpl, ok := tplCache.m[name]
	tplCache.RUnlock()
	if ok {
		return tpl, nil
	}

	tpl, err := template.New(name).Funcs(funcs).ParseFiles(
		filepath.Join(baseDir, "layout.html"),
		filepath.Join(baseDir, name),
	)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	tplCache.Lock()
	tplCache.m[name] = tpl
	tplCache.Unlock()
	return tpl, nil
}
