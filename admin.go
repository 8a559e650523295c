// admin.go - privacy-conscious visit tracking and the admin pages
package main

import (
	"context"
	"crypto/subtle"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/okachamie/portfolio/internal/visits"
)

type admin struct {
	store *visits.Store
	base  string

	token    string
	salt     string
	username string
	password string

	retention time.Duration

	// pending tracks background visit inserts.
	pending sync.WaitGroup
}

func newAdmin(cfg Config, store *visits.Store) (*admin, error) {
	token, err := visits.NewSalt()
	if err != nil {
		return nil, err
	}
	salt, err := visits.NewSalt()
	if err != nil {
		return nil, err
	}
	a := &admin{
		store:     store,
		base:      cfg.BasePath,
		token:     token,
		salt:      salt,
		username:  cfg.AdminUsername,
		password:  cfg.AdminPassword,
		retention: cfg.Retention,
	}

	log.Printf("Admin access available at: %s/admin/login", a.base)
	if gin.Mode() == gin.DebugMode {
		if cfg.AdminPassword == "admin123" {
			log.Println("WARNING: Using default admin credentials. Set ADMIN_USERNAME and ADMIN_PASSWORD.")
		}
		log.Printf("Admin token (dev only): %s", a.token)
	}
	log.Println("Privacy: Visitor tracking enabled with hashed IP addresses")

	// Clean up old visitor data for privacy compliance
	a.cleanup()
	return a, nil
}

func (a *admin) hashIP(ip string) string { return visits.HashIP(ip, a.salt) }

func (a *admin) cleanup() {
	n, err := a.store.Cleanup(context.Background(), a.retention)
	if err != nil {
		log.Printf("Error cleaning up old visitor data: %v", err)
		return
	}
	if n > 0 {
		log.Printf("Privacy cleanup: Removed %d visitor records older than %s", n, a.retention)
	}
}

// untracked lists path prefixes, relative to the base path, that are never
// recorded.
var untracked = []string{"/static/", "/admin/", "/favicon", "/starfield.png", "/healthz"}

// trackVisits records page views with a hashed client address. Requests
// carrying DNT: 1 are not recorded.
func (a *admin) trackVisits() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := strings.TrimPrefix(c.Request.URL.Path, a.base)
		for _, p := range untracked {
			if strings.HasPrefix(path, p) {
				c.Next()
				return
			}
		}
		if c.Request.Method != http.MethodGet || c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		v := visits.Visit{
			HashedIP:  a.hashIP(c.ClientIP()),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      c.Request.URL.Path,
			Timestamp: time.Now(),
		}
		a.pending.Add(1)
		go func() {
			defer a.pending.Done()
			if err := a.store.Record(context.Background(), v); err != nil {
				log.Printf("Error recording visitor: %v", err)
			}
		}()
		c.Next()
	}
}

func (a *admin) requireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("admin_token")
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			c.Redirect(http.StatusFound, a.base+"/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (a *admin) validCredentials(username, password string) bool {
	u := subtle.ConstantTimeCompare([]byte(username), []byte(a.username))
	p := subtle.ConstantTimeCompare([]byte(password), []byte(a.password))
	return u&p == 1
}

func (a *admin) routes(site *gin.RouterGroup) {
	cookiePath := a.base + "/admin"

	site.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
			"base":  a.base,
		})
	})

	site.POST("/admin/login", func(c *gin.Context) {
		if !a.validCredentials(c.PostForm("username"), c.PostForm("password")) {
			log.Printf("Failed admin login attempt from %s", a.hashIP(c.ClientIP()))
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"title": "Admin Login",
				"base":  a.base,
				"error": "Invalid credentials",
			})
			return
		}
		// Secure cookie (24 hours)
		c.SetCookie("admin_token", a.token, 3600*24, cookiePath, "", false, true)
		log.Printf("Admin login successful from %s", a.hashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, a.base+"/admin/dashboard")
	})

	site.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie("admin_token", "", -1, cookiePath, "", false, true)
		c.Redirect(http.StatusFound, a.base+"/admin/login")
	})

	// Protected admin routes group
	g := site.Group("/admin")
	g.Use(a.requireToken())

	g.GET("/dashboard", func(c *gin.Context) {
		stats, err := a.store.Stats(c.Request.Context(), 50)
		if err != nil {
			log.Printf("Error loading admin stats: %v", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"stats": stats,
			"base":  a.base,
		})
	})

	g.GET("/api/stats", func(c *gin.Context) {
		stats, err := a.store.Stats(c.Request.Context(), 50)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	g.GET("/export/stats", func(c *gin.Context) {
		stats, err := a.store.Stats(c.Request.Context(), 1000)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=visit-stats.json")
		log.Printf("Admin stats exported by %s", a.hashIP(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})

	g.POST("/privacy/cleanup", func(c *gin.Context) {
		a.pending.Add(1)
		go func() {
			defer a.pending.Done()
			a.cleanup()
		}()
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup initiated"})
	})
}
