package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/deckbench/deckbench/internal/catalog"
	"github.com/deckbench/deckbench/internal/deck"
	"github.com/deckbench/deckbench/internal/util"
)

// Handlers carries the collaborators the HTTP layer works with.
type Handlers struct {
	cat       *catalog.Catalog
	sessions  *Sessions
	exportDir string
}

// NewHandlers wires the handler set.
func NewHandlers(cat *catalog.Catalog, sessions *Sessions, exportDir string) *Handlers {
	return &Handlers{cat: cat, sessions: sessions, exportDir: exportDir}
}

func (h *Handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handlers) listCards(c *gin.Context) {
	all := h.cat.All()
	c.JSON(http.StatusOK, gin.H{"count": len(all), "cards": all})
}

func (h *Handlers) getCard(c *gin.Context) {
	id := c.Param("id")
	card, ok := h.cat.Lookup(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("unknown card %q", id)})
		return
	}
	c.JSON(http.StatusOK, card)
}

func (h *Handlers) filterCards(c *gin.Context) {
	var opt catalog.FilterOptions
	if err := c.BindJSON(&opt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out := catalog.Filter(h.cat.All(), opt)
	c.JSON(http.StatusOK, gin.H{"count": len(out), "cards": out})
}

func (h *Handlers) createSession(c *gin.Context) {
	s := h.sessions.Create()
	c.JSON(http.StatusCreated, gin.H{"sessionId": s.ID, "deck": s.State()})
}

func (h *Handlers) dropSession(c *gin.Context) {
	if !h.sessions.Drop(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// session resolves the session from the path, replying 404 when it does
// not exist.
func (h *Handlers) session(c *gin.Context) (*Session, bool) {
	s, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	}
	return s, ok
}

func (h *Handlers) deckState(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.State())
}

// addCard adds one copy. A limit refusal is not an error: the response
// carries added=false plus the reason, and the deck stays as it was.
func (h *Handlers) addCard(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	id := c.Param("cardId")
	out := s.Add(id)
	if out == deck.AddUnknownCard {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("unknown card %q", id)})
		return
	}
	resp := gin.H{"added": out == deck.AddOK, "deck": s.State()}
	if out != deck.AddOK {
		resp["reason"] = out.String()
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handlers) removeCard(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	s.Remove(c.Param("cardId"))
	c.JSON(http.StatusOK, s.State())
}

func (h *Handlers) renameDeck(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.Rename(req.Name)
	c.JSON(http.StatusOK, s.State())
}

func (h *Handlers) clearDeck(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	s.Clear()
	c.JSON(http.StatusOK, s.State())
}

// exportDeck writes the portable file under the export directory and
// returns the payload alongside the derived file name.
func (h *Handlers) exportDeck(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	p, err := s.Export()
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	b, err := p.Encode()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := util.EnsureDir(h.exportDir); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	name := deck.FileName(p.DeckName)
	path := filepath.Join(h.exportDir, name)
	if err := os.WriteFile(path, b, 0644); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	slog.Info("deck exported", "session", s.ID, "file", path)
	c.JSON(http.StatusOK, gin.H{"file": name, "deck": p})
}

// importDeck runs the raw request body through the import gates. Any
// failure leaves the session deck untouched and reports the single gate
// message with a 422.
func (h *Handlers) importDeck(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	data, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.Import(data); err != nil {
		slog.Warn("deck import rejected", "session", s.ID, "error", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.State())
}
