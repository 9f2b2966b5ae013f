package dashboard

import (
	"io"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"interndash/internal"
	"interndash/internal/logging"
	"interndash/internal/pipeline"
	filesource "interndash/internal/source/file"
)

// Server renders the listing dashboard and a small JSON API over one shared
// pipeline service. Handlers hold no session state; concurrent requests
// only share the time-bounded grid cache inside the service.
type Server struct {
	svc    *pipeline.Service
	log    *logging.Logger
	engine *gin.Engine
}

func NewServer(svc *pipeline.Service, log *logging.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(cors.Default())

	s := &Server{svc: svc, log: log, engine: engine}

	engine.GET("/", s.handleIndex)
	engine.GET("/healthz", s.handleHealth)
	engine.GET("/api/listings", s.handleListings)
	engine.POST("/upload", s.handleUpload)

	return s
}

// Handler exposes the router for an http.Server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) handleIndex(c *gin.Context) {
	records, err := s.svc.Records(c.Request.Context())
	if err != nil {
		s.log.Error("records fetch failed", "err", err)
		c.String(http.StatusBadGateway, "データ取得エラー: %v", err)
		return
	}
	s.renderRecords(c, records, "")
}

func (s *Server) handleListings(c *gin.Context) {
	records, err := s.svc.Records(c.Request.Context())
	if err != nil {
		s.log.Error("records fetch failed", "err", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	filtered := applyQuery(records, querySelection(c))
	c.JSON(http.StatusOK, gin.H{"count": len(filtered), "listings": filtered})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleUpload accepts a spreadsheet export (csv, xlsx, html table) and runs
// it through the same normalizer as the live sheet. The uploaded grid lives
// only for this response; it never replaces the cached fetch.
func (s *Server) handleUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.String(http.StatusBadRequest, "missing file field: %v", err)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.String(http.StatusBadRequest, "open upload: %v", err)
		return
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		c.String(http.StatusBadRequest, "read upload: %v", err)
		return
	}

	grid, err := filesource.ParseGrid(fileHeader.Filename, content)
	if err != nil {
		c.String(http.StatusBadRequest, "parse upload: %v", err)
		return
	}

	records := pipeline.MaterializeRecords(pipeline.NormalizeGrid(grid))
	s.log.Info("upload processed", "file", fileHeader.Filename, "records", len(records))
	s.renderRecords(c, records, fileHeader.Filename)
}

func (s *Server) renderRecords(c *gin.Context, records []internal.ListingRecord, sourceNote string) {
	sel := querySelection(c)
	page, err := RenderPage(applyQuery(records, sel), records, sel, sourceNote)
	if err != nil {
		s.log.Error("render failed", "err", err)
		c.String(http.StatusInternalServerError, "render error: %v", err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

func querySelection(c *gin.Context) selection {
	return selection{
		Industry:  c.Query("industry"),
		Role:      c.Query("role"),
		WorkStyle: c.Query("workStyle"),
		Sort:      c.Query("sort"),
	}
}

func applyQuery(records []internal.ListingRecord, sel selection) []internal.ListingRecord {
	out := pipeline.ApplyFilter(records, pipeline.Filter{
		Industry:  sel.Industry,
		Role:      sel.Role,
		WorkStyle: sel.WorkStyle,
	})
	if sel.Sort == "deadline" {
		out = pipeline.SortByDeadline(out)
	}
	return out
}
