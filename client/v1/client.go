package v1

type Client struct {
	Transport *Transport
	Employees *EmployeeEndpoint
	Logs      *LogEndpoint
	Reports   *ReportEndpoint
}

// NewClient initializes a client for the monitor server at baseURL.
func NewClient(baseURL string) *Client {
	t := NewTransport(baseURL)
	return &Client{
		Transport: t,
		Employees: &EmployeeEndpoint{transport: t},
		Logs:      &LogEndpoint{transport: t},
		Reports:   &ReportEndpoint{transport: t},
	}
}
