package open_picker

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.ToolID <= 0 {
		return fmt.Errorf("%w: toolID must be positive", ErrInvalidInput)
	}
	return nil
}
