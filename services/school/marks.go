package schoolsvc

import (
	"context"
	"fmt"
	"net/http"

	"github.com/trezcool/shule/core/school"
)

func (c *Client) AddMark(ctx context.Context, token string, data school.NewMark) (school.Mark, error) {
	var m school.Mark
	err := c.do(ctx, http.MethodPost, "/marks", token, data, &m)
	return m, err
}

func (c *Client) StudentMarks(ctx context.Context, token string, studentID int) ([]school.Mark, error) {
	var marks []school.Mark
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/marks/%d", studentID), token, nil, &marks)
	return marks, err
}
