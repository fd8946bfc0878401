package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"frames-studio/internal/admin"
	"frames-studio/internal/auth"
	"frames-studio/internal/carousel"
	"frames-studio/internal/gallery"
	"frames-studio/internal/lightbox"
	"frames-studio/internal/models"
	"frames-studio/internal/pages"
	"frames-studio/internal/services"
	"frames-studio/internal/web"
)

// HomeCarouselSize is how many recent images the home page strip shows.
const HomeCarouselSize = 12

const contactAcknowledgement = "Message Sent! Thank you for reaching out. We'll get back to you within 24 hours."

// PagesHandler renders the server-side page shells.
type PagesHandler struct {
	gallery    *gallery.Adapter
	service    *services.PortfolioService
	gate       *auth.Gate
	sessions   *auth.Manager
	selections *admin.SelectionStore
	intervalMs int
	log        *logrus.Entry
}

func NewPagesHandler(
	adapter *gallery.Adapter,
	service *services.PortfolioService,
	gate *auth.Gate,
	sessions *auth.Manager,
	selections *admin.SelectionStore,
	intervalMs int,
	log *logrus.Entry,
) *PagesHandler {
	if intervalMs <= 0 {
		intervalMs = carousel.DefaultInterval
	}
	return &PagesHandler{
		gallery:    adapter,
		service:    service,
		gate:       gate,
		sessions:   sessions,
		selections: selections,
		intervalMs: intervalMs,
		log:        log,
	}
}

type carouselView struct {
	Items         []gallery.Item
	Category      string
	ShowArrows    bool
	AutoAdvance   bool
	IntervalMs    int
	EdgeThreshold float64
	EndTolerance  float64
}

func (h *PagesHandler) carousel(items []gallery.Item, category string) carouselView {
	state := carousel.New(len(items))
	return carouselView{
		Items:         items,
		Category:      category,
		ShowArrows:    state.Navigable(),
		AutoAdvance:   state.Navigable(),
		IntervalMs:    h.intervalMs,
		EdgeThreshold: carousel.EdgeThreshold,
		EndTolerance:  carousel.EndTolerance,
	}
}

func (h *PagesHandler) render(c *gin.Context, status int, name, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title
	data["Studio"] = pages.StudioName
	data["Services"] = pages.Services
	data["Categories"] = models.Categories
	data["Year"] = time.Now().Year()
	if _, ok := data["Flashes"]; !ok {
		data["Flashes"] = h.sessions.Flashes(c.Writer, c.Request)
	}
	c.HTML(status, name, data)
}

func (h *PagesHandler) Home(c *gin.Context) {
	items := h.gallery.Fetch(c.Request.Context(), "", HomeCarouselSize)
	h.render(c, http.StatusOK, "home.html", "", gin.H{
		"Carousel": h.carousel(items, ""),
	})
}

func (h *PagesHandler) Portfolio(c *gin.Context) {
	category := categoryParam(c)
	h.render(c, http.StatusOK, "portfolio.html", "Portfolio", gin.H{
		"Category": category,
		"Items":    h.gallery.Fetch(c.Request.Context(), category, 0),
	})
}

// View renders one image full screen. The optional key query parameter
// replays a keyboard action and redirects to the resulting position.
func (h *PagesHandler) View(c *gin.Context) {
	category := categoryParam(c)
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		h.NotFound(c)
		return
	}

	items := h.gallery.Fetch(c.Request.Context(), category, 0)
	var lb lightbox.Lightbox
	lb.Open(index, len(items))
	if !lb.IsOpen() {
		c.Redirect(http.StatusSeeOther, web.PortfolioURL(category))
		return
	}

	if key := c.Query("key"); key != "" {
		lb.Key(key)
		if !lb.IsOpen() {
			c.Redirect(http.StatusSeeOther, web.PortfolioURL(category))
			return
		}
		c.Redirect(http.StatusSeeOther, web.ViewURL(lb.Index(), category))
		return
	}

	h.render(c, http.StatusOK, "lightbox.html", "Portfolio", gin.H{
		"Item":     items[lb.Index()],
		"Counter":  lb.Counter(),
		"PrevURL":  web.ViewURL(lb.PrevIndex(), category),
		"NextURL":  web.ViewURL(lb.NextIndex(), category),
		"CloseURL": web.PortfolioURL(category),
		"MinSwipe": lightbox.MinSwipeDistance,
	})
}

func (h *PagesHandler) Service(c *gin.Context) {
	svc, ok := pages.ServiceBySlug(c.Param("slug"))
	if !ok {
		h.NotFound(c)
		return
	}

	items := h.gallery.Fetch(c.Request.Context(), svc.Category, 0)
	h.render(c, http.StatusOK, "service.html", svc.Name, gin.H{
		"Service":  svc,
		"Carousel": h.carousel(items, svc.Category),
	})
}

func (h *PagesHandler) About(c *gin.Context) {
	h.render(c, http.StatusOK, "about.html", "About", nil)
}

func (h *PagesHandler) Contact(c *gin.Context) {
	h.render(c, http.StatusOK, "contact.html", "Contact", gin.H{
		"Form": models.ContactRequest{},
	})
}

// SubmitContact validates and logs an enquiry. Nothing is stored.
func (h *PagesHandler) SubmitContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		h.render(c, http.StatusBadRequest, "contact.html", "Contact", gin.H{
			"Form":   req,
			"Errors": []string{"Please check the form: " + err.Error()},
		})
		return
	}

	h.log.WithFields(logrus.Fields{
		"name":       req.Name,
		"email":      req.Email,
		"event_date": req.EventDate,
	}).Info("contact enquiry received")

	if err := h.sessions.AddFlash(c.Writer, c.Request, contactAcknowledgement); err != nil {
		h.log.WithError(err).Warn("failed to store flash message")
	}
	c.Redirect(http.StatusSeeOther, "/contact")
}

// Admin shows the dashboard to an authenticated session and the login form
// to everyone else.
func (h *PagesHandler) Admin(c *gin.Context) {
	sid, err := h.sessions.SessionID(c.Request)
	if err != nil {
		h.renderLogin(c, http.StatusOK, "")
		return
	}

	data := gin.H{"Images": []models.ImageResponse{}}
	images, err := h.service.List(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Warn("failed to list images for dashboard")
		data["ListError"] = err.Error()
	} else {
		data["Images"] = models.NewImageListResponse(images)
	}

	snap := h.selections.Get(sid)
	selected := make(map[string]bool, len(snap.IDs))
	for _, id := range snap.IDs {
		selected[id] = true
	}
	data["Selection"] = snap
	data["Selected"] = selected

	h.render(c, http.StatusOK, "admin.html", "Admin", data)
}

// AdminLogin handles the login form. A wrong password re-renders the form
// with an inline error; there is no lockout.
func (h *PagesHandler) AdminLogin(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil || !h.gate.Check(req.Password) {
		h.log.WithField("client", c.ClientIP()).Warn("admin login failed")
		h.renderLogin(c, http.StatusUnauthorized, "Incorrect password")
		return
	}

	if _, err := h.sessions.Login(c.Writer, c.Request); err != nil {
		h.log.WithError(err).Error("failed to save admin session")
		h.renderLogin(c, http.StatusInternalServerError, "Could not start a session, please try again")
		return
	}

	h.log.WithField("client", c.ClientIP()).Info("admin logged in")
	c.Redirect(http.StatusSeeOther, "/admin")
}

func (h *PagesHandler) AdminLogout(c *gin.Context) {
	sid, err := h.sessions.Logout(c.Writer, c.Request)
	if err != nil {
		h.log.WithError(err).Warn("failed to clear admin session")
	}
	if sid != "" {
		h.selections.Drop(sid)
	}
	c.Redirect(http.StatusSeeOther, "/admin")
}

func (h *PagesHandler) renderLogin(c *gin.Context, status int, message string) {
	h.render(c, status, "admin_login.html", "Admin", gin.H{
		"Configured": h.gate.Configured(),
		"Error":      message,
	})
}

// NotFound renders the 404 page, or a JSON error for API paths.
func (h *PagesHandler) NotFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not found"})
		return
	}
	h.log.WithField("path", c.Request.URL.Path).Info("page not found")
	h.render(c, http.StatusNotFound, "not_found.html", "Not Found", nil)
}

// categoryParam returns the category query parameter, or "" when it is not
// one of the portfolio categories.
func categoryParam(c *gin.Context) string {
	category := c.Query("category")
	if !models.IsValidCategory(category) {
		return ""
	}
	return category
}
