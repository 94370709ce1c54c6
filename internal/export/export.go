// Package export writes the rendered site to a directory for static hosting.
package export

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/Zachkp/ee-portfolio/internal/render"
)

// FileFor maps a URL path to the file that serves it on a static host.
func FileFor(urlPath string) string {
	p := strings.Trim(path.Clean("/"+urlPath), "/")
	if p == "" {
		return "index.html"
	}
	return filepath.Join(filepath.FromSlash(p), "index.html")
}

// Write copies publicDir into dir when it exists, then adds the stylesheet tree, every
// page and 404.html. Pages are written last so a public file can never stand in for a
// rendered page. It returns the files written, relative to dir.
func Write(dir string, pages *render.Renderer, publicDir string) ([]string, error) {
	var written []string

	files, err := copyPublic(dir, publicDir)
	if err != nil {
		return written, err
	}
	written = append(written, files...)

	files, err = copyTree(render.Static(), filepath.Join(dir, "static"), "")
	if err != nil {
		return written, fmt.Errorf("copy static: %w", err)
	}
	for _, f := range files {
		written = append(written, filepath.Join("static", f))
	}

	for _, page := range pages.Pages() {
		name := FileFor(page.Path)
		if err := writePage(dir, name, pages, page); err != nil {
			return written, err
		}
		written = append(written, name)
	}
	if err := writePage(dir, "404.html", pages, pages.NotFound()); err != nil {
		return written, err
	}
	return append(written, "404.html"), nil
}

// copyPublic copies publicDir into dir. When dir lies inside publicDir, that subtree is
// left out of the copy.
func copyPublic(dir, publicDir string) ([]string, error) {
	if publicDir == "" {
		return nil, nil
	}
	if _, err := os.Stat(publicDir); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	srcAbs, err := filepath.Abs(publicDir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", publicDir, err)
	}
	dstAbs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", dir, err)
	}

	skip := ""
	rel, err := filepath.Rel(srcAbs, dstAbs)
	if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		if rel == "." {
			return nil, fmt.Errorf("output dir %s is the public dir", dir)
		}
		skip = filepath.ToSlash(rel)
	}

	files, err := copyTree(os.DirFS(publicDir), dir, skip)
	if err != nil {
		return files, fmt.Errorf("copy %s: %w", publicDir, err)
	}
	return files, nil
}

func writePage(dir, name string, pages *render.Renderer, page render.Page) error {
	body, err := pages.Bytes(page)
	if err != nil {
		return err
	}
	dst := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", name, err)
	}
	if err := os.WriteFile(dst, body, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// copyTree copies every regular file of src into dst, overwriting existing files.
// skip names a slash-separated directory of src to leave out.
func copyTree(src fs.FS, dst, skip string) ([]string, error) {
	var copied []string
	err := fs.WalkDir(src, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if skip != "" && d.IsDir() && p == skip {
			return fs.SkipDir
		}
		target := filepath.Join(dst, filepath.FromSlash(p))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		data, err := fs.ReadFile(src, p)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return err
		}
		copied = append(copied, filepath.FromSlash(p))
		return nil
	})
	return copied, err
}
