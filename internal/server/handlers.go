package server

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ironsheep/alpha-tools-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_visual_center").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Errors are mapped by kind: an *imaging.InputError becomes -32602 so the
// client knows to fix its request, anything else becomes -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	start := time.Now()
	result, err := s.executeTool(params.Name, params.Arguments)
	log := s.log.With("tool", params.Name, "duration", time.Since(start))
	if err != nil {
		var inputErr *imaging.InputError
		if errors.As(err, &inputErr) {
			log.Info("tool rejected input", "error", err)
			return s.errorResponse(req.ID, codeInvalidParams, "Invalid input", err.Error())
		}
		if errors.Is(err, errUnknownTool) {
			log.Warn("unknown tool")
			return s.errorResponse(req.ID, codeMethodNotFound, "Unknown tool", err.Error())
		}
		log.Error("tool failed", "error", err)
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}
	log.Debug("tool completed")

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

var errUnknownTool = errors.New("unknown tool")

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads the raster from cache
//  4. Calls the appropriate imaging function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_upload":
		return s.handleImageUpload(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_key_candidates":
		return s.handleImageKeyCandidates(args)

	// Transparency
	case "image_apply_transparency":
		return s.handleImageApplyTransparency(args)

	// Visual Center
	case "image_visual_center":
		return s.handleImageVisualCenter(args)
	case "image_mark_center":
		return s.handleImageMarkCenter(args)

	default:
		return nil, fmt.Errorf("%w: %s", errUnknownTool, name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments. Malformed arguments are the
// client's fault, so they are reported as input errors.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return &imaging.InputError{Reason: fmt.Sprintf("malformed arguments: %v", err)}
	}
	return nil
}

// === Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

type imageUploadArgs struct {
	Data      string `json:"data"`
	FileName  string `json:"file_name"`
	OutputDir string `json:"output_dir"`
}

// UploadResult describes an uploaded image stored on disk. FilePath can be
// passed as path to the other tools.
type UploadResult struct {
	FileName        string `json:"file_name"`
	FilePath        string `json:"file_path"`
	Format          string `json:"format"`
	Width           int    `json:"width"`
	Height          int    `json:"height"`
	HasTransparency bool   `json:"has_transparency"`
}

// handleImageUpload stores base64 image bytes sent by the client. The bytes
// must decode as an image before anything is written.
func (s *Server) handleImageUpload(args json.RawMessage) (interface{}, error) {
	var a imageUploadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.FileName == "" {
		return nil, &imaging.InputError{Reason: "no file name"}
	}
	if a.Data == "" {
		return nil, &imaging.InputError{Reason: "no image data"}
	}

	data, err := base64.StdEncoding.DecodeString(a.Data)
	if err != nil {
		return nil, &imaging.InputError{Reason: fmt.Sprintf("image data is not valid base64: %v", err)}
	}

	r, format, err := imaging.DecodeRaster(data)
	if err != nil {
		return nil, err
	}

	dir := a.OutputDir
	if dir == "" {
		dir = s.outputDir
	}
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "alpha-tools-mcp", "uploads")
	}

	path, err := imaging.SaveUpload(data, dir, a.FileName)
	if err != nil {
		return nil, err
	}
	s.cache.Evict(path)

	s.log.Info("stored upload", "file", path, "format", format, "bytes", len(data))

	return &UploadResult{
		FileName:        filepath.Base(path),
		FilePath:        path,
		Format:          format,
		Width:           r.Width(),
		Height:          r.Height(),
		HasTransparency: r.HasTransparency(),
	}, nil
}

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	r, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(r, a.X, a.Y)
}

type imageKeyCandidatesArgs struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

func (s *Server) handleImageKeyCandidates(args json.RawMessage) (interface{}, error) {
	var a imageKeyCandidatesArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	r, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.KeyCandidates(r, a.Count)
}

// === Transparency Handlers ===

type imageApplyTransparencyArgs struct {
	Path      string `json:"path"`
	Color     []int  `json:"color"`
	Hex       string `json:"hex"`
	OutputDir string `json:"output_dir"`
}

// ApplyTransparencyResult describes the color-keyed image written to disk.
type ApplyTransparencyResult struct {
	FileName          string        `json:"file_name"`
	FilePath          string        `json:"file_path"`
	Width             int           `json:"width"`
	Height            int           `json:"height"`
	Key               imaging.Color `json:"key"`
	TransparentPixels int           `json:"transparent_pixels"`
}

func (s *Server) handleImageApplyTransparency(args json.RawMessage) (interface{}, error) {
	var a imageApplyTransparencyArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, &imaging.InputError{Reason: "no image selected"}
	}

	key, err := parseKey(a.Color, a.Hex)
	if err != nil {
		return nil, err
	}

	r, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	out := imaging.ApplyColorKey(r, key)

	dir := a.OutputDir
	if dir == "" {
		dir = s.outputDir
	}
	if dir == "" {
		dir = filepath.Dir(a.Path)
	}

	path, err := imaging.SaveTransparent(out, dir, a.Path)
	if err != nil {
		return nil, err
	}
	// The file may have replaced an earlier output that is still cached.
	s.cache.Evict(path)

	s.log.Info("applied transparency", "source", a.Path, "output", path,
		"key", fmt.Sprintf("#%02X%02X%02X", key.R, key.G, key.B))

	return &ApplyTransparencyResult{
		FileName:          filepath.Base(path),
		FilePath:          path,
		Width:             out.Width(),
		Height:            out.Height(),
		Key:               key,
		TransparentPixels: imaging.CountTransparent(out),
	}, nil
}

// parseKey accepts either a [r, g, b] list or a hex string, not both.
func parseKey(list []int, hex string) (imaging.Color, error) {
	switch {
	case list != nil && hex != "":
		return imaging.Color{}, &imaging.InputError{Reason: "specify either color or hex, not both"}
	case hex != "":
		return imaging.ParseHexColor(hex)
	default:
		return imaging.ColorFromList(list)
	}
}

// === Visual Center Handlers ===

type imageVisualCenterArgs struct {
	Path string `json:"path"`
}

// VisualCenterResult is the response of image_visual_center. Center repeats
// X and Y as a [x, y] pair.
type VisualCenterResult struct {
	Center    [2]int `json:"center"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Imbalance int64  `json:"imbalance"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

func (s *Server) handleImageVisualCenter(args json.RawMessage) (interface{}, error) {
	var a imageVisualCenterArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	r, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	c, err := imaging.LocateVisualCenter(r)
	if err != nil {
		return nil, err
	}

	return &VisualCenterResult{
		Center:    [2]int{c.X, c.Y},
		X:         c.X,
		Y:         c.Y,
		Imbalance: c.Imbalance,
		Width:     r.Width(),
		Height:    r.Height(),
	}, nil
}

type imageMarkCenterArgs struct {
	Path      string `json:"path"`
	X         *int   `json:"x"`
	Y         *int   `json:"y"`
	Radius    *int   `json:"radius"`
	Crosshair bool   `json:"crosshair"`
	Color     string `json:"color"`
	Label     bool   `json:"label"`
}

func (s *Server) handleImageMarkCenter(args json.RawMessage) (interface{}, error) {
	var a imageMarkCenterArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if (a.X == nil) != (a.Y == nil) {
		return nil, &imaging.InputError{Reason: "x and y must be given together"}
	}
	radius := 5
	if a.Radius != nil {
		radius = *a.Radius
	}
	if a.Color == "" {
		a.Color = "#00FF00"
	}

	r, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	var c imaging.Center
	if a.X != nil {
		c = imaging.Center{X: *a.X, Y: *a.Y}
	} else if c, err = imaging.LocateVisualCenter(r); err != nil {
		return nil, err
	}

	return imaging.MarkCenter(r, c, imaging.MarkerOptions{
		Radius:    radius,
		Crosshair: a.Crosshair,
		Color:     a.Color,
		Label:     a.Label,
	})
}
