package schoolsvc

import (
	"context"
	"fmt"
	"net/http"

	"github.com/trezcool/shule/core/school"
)

func (c *Client) Teachers(ctx context.Context, token string) ([]school.User, error) {
	var teachers []school.User
	err := c.do(ctx, http.MethodGet, "/teachers", token, nil, &teachers)
	return teachers, err
}

func (c *Client) CreateTeacher(ctx context.Context, token string, data school.NewTeacher) (school.User, error) {
	var usr school.User
	err := c.do(ctx, http.MethodPost, "/teachers", token, data, &usr)
	return usr, err
}

func (c *Client) UpdateTeacher(ctx context.Context, token string, id int, data school.UpdateTeacher) (school.User, error) {
	var usr school.User
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/teachers/%d", id), token, data, &usr)
	return usr, err
}

func (c *Client) DeleteTeacher(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/teachers/%d", id), token, nil, nil)
}
