package server

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/cruxvision/holdscan/internal/background"
	"github.com/cruxvision/holdscan/internal/detection"
	"github.com/cruxvision/holdscan/internal/imaging"
	"github.com/cruxvision/holdscan/internal/render"
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to the holdscan climbing hold detection service",
	})
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	UptimeSec int64  `json:"uptime_seconds"`
	System    struct {
		GoVersion  string `json:"go_version"`
		OS         string `json:"os"`
		Arch       string `json:"arch"`
		NumCPU     int    `json:"num_cpu"`
		Goroutines int    `json:"goroutines"`
		AllocBytes uint64 `json:"alloc_bytes"`
		SysBytes   uint64 `json:"sys_bytes"`
	} `json:"system"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	resp := healthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		UptimeSec: int64(time.Since(s.started).Seconds()),
	}
	resp.System.GoVersion = runtime.Version()
	resp.System.OS = runtime.GOOS
	resp.System.Arch = runtime.GOARCH
	resp.System.NumCPU = runtime.NumCPU()
	resp.System.Goroutines = runtime.NumGoroutine()
	resp.System.AllocBytes = mem.Alloc
	resp.System.SysBytes = mem.Sys

	writeJSON(w, http.StatusOK, resp)
}

type uploadResponse struct {
	Filename string `json:"filename"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Format   string `json:"format"`
	Message  string `json:"message"`
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	data, filename, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	info, err := imaging.Sniff(data)
	if err != nil {
		s.respondError(w, err)
		return
	}

	log.Printf("upload accepted: %s (%dx%d %s)", filename, info.Width, info.Height, info.Format)
	writeJSON(w, http.StatusOK, uploadResponse{
		Filename: filename,
		Width:    info.Width,
		Height:   info.Height,
		Format:   info.Format,
		Message:  "Image uploaded successfully",
	})
}

func (s *Server) handleIdentifyRoute(w http.ResponseWriter, r *http.Request) {
	data, filename, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	c, err := detection.ParseColor(r.FormValue("color"))
	if err != nil {
		s.respondError(w, err)
		return
	}

	img, err := imaging.Decode(data)
	if err != nil {
		s.respondError(w, err)
		return
	}

	result, err := detection.Identify(img, c, s.cfg.MinArea)
	if err != nil {
		s.respondError(w, err)
		return
	}

	log.Printf("identified %d %s holds in %s", len(result.Holds), c, filename)
	writeJSON(w, http.StatusOK, result)
}

type identifyAllResponse struct {
	Routes detection.MultiResult `json:"routes"`
}

func (s *Server) handleIdentifyAllRoutes(w http.ResponseWriter, r *http.Request) {
	data, filename, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	img, err := imaging.Decode(data)
	if err != nil {
		s.respondError(w, err)
		return
	}

	routes, err := detection.IdentifyAll(img, s.cfg.MinArea)
	if err != nil {
		s.respondError(w, err)
		return
	}

	log.Printf("identified holds for all colors in %s", filename)
	writeJSON(w, http.StatusOK, identifyAllResponse{Routes: routes})
}

type visualizeResponse struct {
	Color       string                `json:"color,omitempty"`
	Holds       []detection.Hold      `json:"holds,omitempty"`
	Routes      detection.MultiResult `json:"routes,omitempty"`
	Width       int                   `json:"width"`
	Height      int                   `json:"height"`
	MimeType    string                `json:"mime_type"`
	ImageBase64 string                `json:"image_base64"`
	SavedPath   string                `json:"saved_path,omitempty"`
}

func (s *Server) handleVisualizeRoute(w http.ResponseWriter, r *http.Request) {
	data, filename, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	c, err := detection.ParseColor(r.FormValue("color"))
	if err != nil {
		s.respondError(w, err)
		return
	}
	overlay := formBool(r, "overlay")

	img, err := imaging.Decode(data)
	if err != nil {
		s.respondError(w, err)
		return
	}

	result, err := detection.Identify(img, c, s.cfg.MinArea)
	if err != nil {
		s.respondError(w, err)
		return
	}

	encoded, err := render.Holds(img, map[string][]detection.Hold{result.Color: result.Holds}, overlay)
	if err != nil {
		s.respondError(w, err)
		return
	}

	log.Printf("visualized %d %s holds in %s (overlay=%t)", len(result.Holds), c, filename, overlay)
	writeJSON(w, http.StatusOK, visualizeResponse{
		Color:       result.Color,
		Holds:       result.Holds,
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		MimeType:    "image/png",
		ImageBase64: base64.StdEncoding.EncodeToString(encoded),
		SavedPath:   s.save(encoded, "route_"+result.Color),
	})
}

func (s *Server) handleVisualizeAllRoutes(w http.ResponseWriter, r *http.Request) {
	data, filename, ok := s.readUpload(w, r)
	if !ok {
		return
	}
	overlay := formBool(r, "overlay")

	img, err := imaging.Decode(data)
	if err != nil {
		s.respondError(w, err)
		return
	}

	routes, err := detection.IdentifyAll(img, s.cfg.MinArea)
	if err != nil {
		s.respondError(w, err)
		return
	}

	encoded, err := render.Holds(img, routes, overlay)
	if err != nil {
		s.respondError(w, err)
		return
	}

	log.Printf("visualized all routes in %s (overlay=%t)", filename, overlay)
	writeJSON(w, http.StatusOK, visualizeResponse{
		Routes:      routes,
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		MimeType:    "image/png",
		ImageBase64: base64.StdEncoding.EncodeToString(encoded),
		SavedPath:   s.save(encoded, "all_routes"),
	})
}

type removeBackgroundResponse struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	MimeType    string `json:"mime_type"`
	ImageBase64 string `json:"image_base64"`
	SavedPath   string `json:"saved_path,omitempty"`
}

func (s *Server) handleRemoveBackground(w http.ResponseWriter, r *http.Request) {
	data, filename, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	img, err := imaging.Decode(data)
	if err != nil {
		s.respondError(w, err)
		return
	}

	cut, err := background.Remove(img, background.DefaultMargin, background.DefaultThreshold)
	if err != nil {
		s.respondError(w, err)
		return
	}

	encoded, err := imaging.EncodePNG(cut)
	if err != nil {
		s.respondError(w, err)
		return
	}

	log.Printf("removed background from %s", filename)
	writeJSON(w, http.StatusOK, removeBackgroundResponse{
		Width:       cut.Bounds().Dx(),
		Height:      cut.Bounds().Dy(),
		MimeType:    "image/png",
		ImageBase64: base64.StdEncoding.EncodeToString(encoded),
		SavedPath:   s.save(encoded, "nobg"),
	})
}

// readUpload enforces POST, the upload size cap, and the "image" form
// field. On failure it writes the error response itself and returns
// ok=false.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (data []byte, filename string, ok bool) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return nil, "", false
	}

	maxBytes := s.cfg.MaxUploadMB << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		writeError(w, http.StatusBadRequest, "failed to parse multipart form")
		return nil, "", false
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no image file provided; use 'image' as the form field name")
		return nil, "", false
	}
	defer file.Close()

	data, err = io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read uploaded file")
		return nil, "", false
	}

	return data, header.Filename, true
}

// save writes encoded PNG bytes to the configured output directory with a
// timestamped name. Saving is best-effort: failures are logged and an
// empty path is returned. Returns "" when no output directory is set.
func (s *Server) save(encoded []byte, prefix string) string {
	if s.cfg.OutputDir == "" {
		return ""
	}
	if err := os.MkdirAll(s.cfg.OutputDir, 0o755); err != nil {
		log.Printf("create output dir: %v", err)
		return ""
	}
	name := fmt.Sprintf("%s_%s.png", prefix, time.Now().Format("20060102_150405"))
	path := filepath.Join(s.cfg.OutputDir, name)
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		log.Printf("save %s: %v", path, err)
		return ""
	}
	log.Printf("saved %s", path)
	return path
}

// respondError maps pipeline errors to HTTP statuses. Malformed input is
// the client's problem; everything else is logged and reported generically
// so internals never leak.
func (s *Server) respondError(w http.ResponseWriter, err error) {
	var colorErr *detection.UnsupportedColorError
	var decodeErr *imaging.DecodeError
	switch {
	case errors.As(err, &colorErr):
		writeError(w, http.StatusBadRequest, colorErr.Error())
	case errors.As(err, &decodeErr):
		writeError(w, http.StatusBadRequest, "file is not a decodable image")
	default:
		log.Printf("processing error: %v", err)
		writeError(w, http.StatusInternalServerError, "error processing image")
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// formBool interprets checkbox-style form values.
func formBool(r *http.Request, key string) bool {
	switch r.FormValue(key) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}
