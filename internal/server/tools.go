package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file (PNG, JPEG, GIF, BMP, TIFF or WebP)",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, and whether it contains fully transparent pixels.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_upload",
			Description: "Store a base64-encoded image sent by the client and return its file path for use with the other tools.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"data": map[string]interface{}{
						"type":        "string",
						"description": "Image file contents, base64-encoded (PNG, JPEG, GIF, BMP, TIFF or WebP)",
					},
					"file_name": map[string]interface{}{
						"type":        "string",
						"description": "File name to store the image under. Directory components are dropped",
					},
					"output_dir": map[string]interface{}{
						"type":        "string",
						"description": "Directory to store the image in. Defaults to the server output directory, or a temporary directory",
					},
				},
				"required": []string{"data", "file_name"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the exact color at a pixel. The returned 'key' can be passed as 'color' to image_apply_transparency.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_key_candidates",
			Description: "List the most frequent exact colors among visible pixels. Useful for choosing a background color to remove.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors to return. Default 5",
						"default":     5,
					},
				},
				"required": []string{"path"},
			},
		},

		// Transparency
		{
			Name:        "image_apply_transparency",
			Description: "Make every pixel that exactly matches a color fully transparent and save the result as transparent_<name>.png.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"color": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "integer", "minimum": 0, "maximum": 255},
						"minItems":    3,
						"maxItems":    3,
						"description": "Color to remove as [r, g, b]",
					},
					"hex": map[string]interface{}{
						"type":        "string",
						"description": "Color to remove as #RRGGBB (alternative to color)",
					},
					"output_dir": map[string]interface{}{
						"type":        "string",
						"description": "Directory for the output image. Defaults to the server output directory, or the source image's directory",
					},
				},
				"required": []string{"path"},
			},
		},

		// Visual Center
		{
			Name:        "image_visual_center",
			Description: "Find the point that best balances brightness across four quadrants of an image with transparency. Transparent pixels count as black. Fails if the image has no fully transparent pixel.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_mark_center",
			Description: "Draw a marker at a point (or at the computed visual center when x and y are omitted) and return the image as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "Split X coordinate (0 to width). Optional",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Split Y coordinate (0 to height). Optional",
					},
					"radius": map[string]interface{}{
						"type":        "integer",
						"description": "Half the side of the marker square in pixels. Default 5",
						"default":     5,
					},
					"crosshair": map[string]interface{}{
						"type":        "boolean",
						"description": "Also draw full-width and full-height lines through the point",
						"default":     false,
					},
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Marker color as #RRGGBB or #RRGGBBAA. Default #00FF00",
						"default":     "#00FF00",
					},
					"label": map[string]interface{}{
						"type":        "boolean",
						"description": "Print the x,y coordinates next to the marker",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
