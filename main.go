package main

import (
	"embed"
	"flag"
	"html/template"
	"log"
	"net/http"
	"os"
	"path/filepath"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"

	"github.com/okachamie/portfolio/internal/visits"
)

// The browser build of the star field and its Go loader live in the static
// directory; the page falls back to a black backdrop without them.
//go:generate sh -c "GOOS=js GOARCH=wasm go build -o static/starfield.wasm ./cmd/starfield-wasm"
//go:generate sh -c "cp \"$(go env GOROOT)/lib/wasm/wasm_exec.js\" static/"

//go:embed templates/*.html
var templateFS embed.FS

func main() {
	exportDir := flag.String("export", "", "write a static build of the page to this directory and exit")
	flag.Parse()

	cfg := loadConfig()
	profile, err := loadProfile(cfg.ProfileFile)
	if err != nil {
		log.Fatal("Failed to load profile:", err)
	}

	if *exportDir != "" {
		if err := exportSite(*exportDir, cfg, profile); err != nil {
			log.Fatal("Export failed:", err)
		}
		log.Printf("Static site written to %s", *exportDir)
		return
	}

	var adm *admin
	if cfg.DBPath != "" {
		store, err := visits.Open(cfg.DBPath)
		if err != nil {
			log.Fatal("Failed to open visits database:", err)
		}
		defer store.Close()
		if adm, err = newAdmin(cfg, store); err != nil {
			log.Fatal(err)
		}
	}

	r, err := newRouter(cfg, profile, adm)
	if err != nil {
		log.Fatal(err)
	}
	if !hasStarfieldWasm(cfg.StaticDir) {
		log.Printf("starfield.wasm or wasm_exec.js missing from %s, run go generate to build them", cfg.StaticDir)
	}

	log.Printf("Portfolio available at http://localhost:%s%s/", cfg.Port, cfg.BasePath)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func parseTemplates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// newRouter builds the site. adm is nil when visit tracking is off.
func newRouter(cfg Config, profile Profile, adm *admin) (*gin.Engine, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	r := gin.Default()
	r.SetHTMLTemplate(tmpl)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if cfg.BasePath != "" {
		r.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusFound, cfg.BasePath+"/")
		})
	}

	site := r.Group(cfg.BasePath)
	if adm != nil {
		site.Use(adm.trackVisits())
		adm.routes(site)
	}

	site.Static("/static", cfg.StaticDir)

	// Home page route
	page := pageData(cfg, profile)
	site.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", page)
	})

	// Headless render of the background
	site.GET("/starfield.png", starfieldPreview)

	return r, nil
}

// pageData is the template input for the landing page.
func pageData(cfg Config, profile Profile) gin.H {
	return gin.H{
		"profile": profile,
		"base":    cfg.BasePath,
		"wasm":    hasStarfieldWasm(cfg.StaticDir),
	}
}

// hasStarfieldWasm reports whether the browser build of the animator and
// its loader are in the static directory. Without them the page still
// renders over a plain black backdrop.
func hasStarfieldWasm(dir string) bool {
	for _, name := range []string{"starfield.wasm", "wasm_exec.js"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			return false
		}
	}
	return true
}
