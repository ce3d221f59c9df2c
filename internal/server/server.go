package server

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shlokavani/chandas/internal/config"
	"github.com/shlokavani/chandas/internal/core"
	"github.com/shlokavani/chandas/internal/core/catalog"
	"github.com/shlokavani/chandas/internal/core/model"
	"github.com/shlokavani/chandas/internal/culture"
	"github.com/shlokavani/chandas/internal/knowledge"
	"github.com/shlokavani/chandas/internal/llm"
)

type Server struct {
	Identifier *core.Identifier
	Store      *knowledge.Store // nil when no knowledge base is configured
	Log        *zap.SugaredLogger
}

// NewServer builds the full service from config/config.toml (overridable via
// CONFIG_PATH) with environment-variable overrides for the LLM settings.
func NewServer(logger *zap.SugaredLogger) *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Warnw("could not load config file; using defaults", "path", cfgPath, "error", err)
		cfg = &config.Config{}
		cfg.ApplyDefaults()
	}

	if envProvider := os.Getenv("LLM_PROVIDER"); envProvider != "" {
		cfg.LLM.Provider = envProvider
	}
	if envModel := os.Getenv("LLM_MODEL"); envModel != "" {
		cfg.LLM.Model = envModel
	}
	if envAPIKey := os.Getenv("LLM_API_KEY"); envAPIKey != "" {
		cfg.LLM.APIKey = envAPIKey
	}
	if envBaseURL := os.Getenv("LLM_BASE_URL"); envBaseURL != "" {
		cfg.LLM.BaseURL = envBaseURL
	}
	if envURI := os.Getenv("MEMGRAPH_URI"); envURI != "" {
		cfg.Knowledge.URI = envURI
	}

	cat, err := catalog.Load()
	if err != nil {
		logger.Fatalw("failed to load meter catalog", "error", err)
	}
	known, err := catalog.LoadKnownVerses()
	if err != nil {
		logger.Fatalw("failed to load known-verse table", "error", err)
	}

	client, err := llm.NewClient(context.Background(), cfg.LLM)
	if err != nil {
		logger.Fatalw("failed to initialize llm client", "error", err)
	}
	if client == nil {
		logger.Info("no llm provider configured; running algorithmic identification only")
	}

	var store *knowledge.Store
	var provider core.ContextProvider
	if cfg.Knowledge.URI != "" {
		store, err = knowledge.NewStore(context.Background(), cfg.Knowledge.URI, cfg.Knowledge.User, cfg.Knowledge.Password, logger)
		if err != nil {
			logger.Warnw("knowledge store unavailable; continuing without it", "error", err)
		} else {
			_ = store.BuildIndices(context.Background())
			provider = store
		}
	}

	return &Server{
		Identifier: core.New(cat, known, client, cfg.Prompts, provider, logger),
		Store:      store,
		Log:        logger,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/health", s.Health)
	r.POST("/chandas/identify", s.IdentifyChandas)
	r.GET("/chandas/info/:name", s.ChandasInfo)
	r.POST("/kb/documents", s.AddDocument)
	r.POST("/kb/search", s.SearchDocuments)

	return r
}

type IdentifyRequest struct {
	Shloka string `json:"shloka" binding:"required"`
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) IdentifyChandas(c *gin.Context) {
	var req IdentifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	result, err := s.Identifier.Identify(c.Request.Context(), req.Shloka)
	if err != nil {
		if errors.Is(err, model.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		s.Log.Errorw("identification failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to identify chandas"})
		return
	}

	// Enrich the explanation with the cultural record when the meter has one.
	if cultural := culture.FormatContext(result.ChandasName); cultural != "" {
		enriched := *result
		enriched.Explanation = result.Explanation + "\n\n" + cultural
		result = &enriched
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) ChandasInfo(c *gin.Context) {
	name := c.Param("name")
	info, ok := culture.Lookup(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown meter"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"name":         name,
		"syllables":    info.Syllables,
		"structure":    info.Structure,
		"symbolism":    info.Symbolism,
		"deity":        info.Deity,
		"meaning":      info.Meaning,
		"significance": info.Significance,
	})
}

type AddDocumentRequest struct {
	Collection string            `json:"collection" binding:"required"`
	Content    string            `json:"content" binding:"required"`
	Metadata   map[string]string `json:"metadata"`
}

func (s *Server) AddDocument(c *gin.Context) {
	if s.Store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Knowledge base not configured"})
		return
	}
	var req AddDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	doc, err := s.Store.AddDocument(c.Request.Context(), req.Collection, req.Content, req.Metadata)
	if err != nil {
		s.Log.Errorw("failed to add document", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add document"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

type SearchDocumentsRequest struct {
	Collection string `json:"collection" binding:"required"`
	Query      string `json:"query" binding:"required"`
	Limit      int    `json:"limit"`
}

func (s *Server) SearchDocuments(c *gin.Context) {
	if s.Store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Knowledge base not configured"})
		return
	}
	var req SearchDocumentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	docs, err := s.Store.Search(c.Request.Context(), req.Collection, req.Query, req.Limit)
	if err != nil {
		s.Log.Errorw("search failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": docs, "total": len(docs)})
}
