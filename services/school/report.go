package schoolsvc

import (
	"context"
	"net/http"

	"github.com/trezcool/shule/core/school"
)

type reportRequest struct {
	StudentID int `json:"student_id"`
}

// GenerateReport asks the backend for an AI study report for the student.
// A 2xx response may still carry success=false in the payload; callers must
// check Report.Success.
func (c *Client) GenerateReport(ctx context.Context, token string, studentID int) (school.Report, error) {
	var rep school.Report
	err := c.do(ctx, http.MethodPost, "/ai-report", token, reportRequest{StudentID: studentID}, &rep)
	return rep, err
}
