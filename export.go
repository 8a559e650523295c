package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// exportSite writes index.html and the static assets into dir, laid out for
// serving under cfg.BasePath. The star-field background is only exported
// when `go generate` has put starfield.wasm and wasm_exec.js into
// cfg.StaticDir beforehand.
func exportSite(dir string, cfg Config, profile Profile) error {
	tmpl, err := parseTemplates()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "index.html"))
	if err != nil {
		return fmt.Errorf("create index.html: %w", err)
	}
	if err := tmpl.ExecuteTemplate(f, "index.html", pageData(cfg, profile)); err != nil {
		f.Close()
		return fmt.Errorf("render index.html: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	if !hasStarfieldWasm(cfg.StaticDir) {
		log.Printf("Exporting without the star-field background: run go generate first")
	}

	err = copyTree(cfg.StaticDir, filepath.Join(dir, "static"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return out.Close()
}
