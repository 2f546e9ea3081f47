// Package canvas provides the HTTP client for the Canvas LMS REST API.
//
// # Overview
//
// The client wraps a single Canvas instance and exposes the JSON, query and
// multipart call shapes the API uses. Resource types in pkg/models build on
// it; request payloads are produced by pkg/dto and pkg/formenc.
//
// # Quick Start
//
//	cfg := canvas.DefaultConfig()
//	cfg.BaseURL = "https://canvas.example.edu"
//	cfg.AccessToken = os.Getenv("CANVAS_ACCESS_TOKEN")
//
//	client, err := canvas.NewClient(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	var course map[string]any
//	err = client.Get(ctx, "courses/42", nil, &course)
//
// # Scopes
//
// Many Canvas resources live under a course, group, user or account.
// Operations on those resources take an explicit Scope value instead of any
// ambient state:
//
//	topics, err := models.ListDiscussionTopics(ctx, client, canvas.CourseScope(42), nil)
//
// # Pagination
//
// List endpoints return pages linked through the Link response header. The
// Pager walks them:
//
//	pager := client.List("courses/42/students", nil)
//	rows, err := pager.All(ctx)
//
// # Error Handling
//
// Non-2xx responses surface as *APIError carrying the HTTP status and the
// decoded Canvas error body. Server errors and transport failures retry
// with a delay, up to Config.MaxRetries attempts.
package canvas
