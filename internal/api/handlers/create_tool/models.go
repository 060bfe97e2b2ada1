package create_tool

// CreateToolRequest HTTP request model
type CreateToolRequest struct {
	ToolName string `json:"toolName"`
	Category string `json:"category,omitempty"`
}
