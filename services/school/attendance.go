package schoolsvc

import (
	"context"
	"fmt"
	"net/http"

	"github.com/trezcool/shule/core/school"
)

func (c *Client) RecordAttendance(ctx context.Context, token string, data school.NewAttendance) (school.Attendance, error) {
	var att school.Attendance
	err := c.do(ctx, http.MethodPost, "/attendance", token, data, &att)
	return att, err
}

func (c *Client) StudentAttendance(ctx context.Context, token string, studentID int) ([]school.Attendance, error) {
	var atts []school.Attendance
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/attendance/%d", studentID), token, nil, &atts)
	return atts, err
}
