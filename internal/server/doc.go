// Package server implements the MCP (Model Context Protocol) server for the
// alpha tools.
//
// The server speaks JSON-RPC 2.0 over stdio:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Image Information:
//   - image_load: Dimensions, format and transparency summary
//   - image_upload: Store base64 image bytes and return a path for the other tools
//   - image_sample_color: Exact color at a pixel, ready to use as a key
//   - image_key_candidates: Most frequent visible colors
//
// Transparency:
//   - image_apply_transparency: Color-key an image and save transparent_<name>.png
//
// Visual Center:
//   - image_visual_center: Split point that best balances quadrant brightness
//   - image_mark_center: Debug rendering of a split point as base64 PNG
//
// # Image Caching
//
// Decoded images are cached by path until the next initialize request.
// Files written by image_upload and image_apply_transparency are evicted so
// a later call sees the new file.
//
// # Error Handling
//
// Tool errors become JSON-RPC error responses:
//   - -32700: the request line is not JSON (answered with a null id)
//   - -32602: the request was invalid (no transparency, bad color, missing file)
//   - -32601: unknown method or tool
//   - -32000: the image could not be decoded or an output could not be written
//
// The error data field carries the underlying message.
package server
