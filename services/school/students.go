package schoolsvc

import (
	"context"
	"fmt"
	"net/http"

	"github.com/trezcool/shule/core/school"
)

// Students lists students. The backend scopes the list by role: teachers see
// their roster, a student sees only their own record.
func (c *Client) Students(ctx context.Context, token string) ([]school.Student, error) {
	var students []school.Student
	err := c.do(ctx, http.MethodGet, "/students", token, nil, &students)
	return students, err
}

func (c *Client) CreateStudent(ctx context.Context, token string, data school.NewStudent) (school.Student, error) {
	var st school.Student
	err := c.do(ctx, http.MethodPost, "/students", token, data, &st)
	return st, err
}

func (c *Client) UpdateStudent(ctx context.Context, token string, id int, data school.UpdateStudent) (school.Student, error) {
	var st school.Student
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/students/%d", id), token, data, &st)
	return st, err
}

func (c *Client) DeleteStudent(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/students/%d", id), token, nil, nil)
}
