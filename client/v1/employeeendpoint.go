package v1

import "context"

type RegisterRequest struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name,omitempty"`
	Email      string `json:"email,omitempty"`
}

type EmployeeEndpoint struct {
	transport *Transport
}

// Register reports whether the employee was newly created.
func (e *EmployeeEndpoint) Register(ctx context.Context, req RegisterRequest) (bool, error) {
	resp, err := e.transport.Post(ctx, "/register", req)
	if err != nil {
		return false, err
	}
	out, err := decode[struct {
		Created bool `json:"created"`
	}](resp)
	if err != nil {
		return false, err
	}
	return out.Created, nil
}
