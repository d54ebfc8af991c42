package schoolsvc

import (
	"context"
	"net/http"

	"github.com/trezcool/shule/core/school"
)

// Dashboard fetches the aggregate stats and recent activity. It doubles as
// the session validity probe: a 401 here means the token is stale.
func (c *Client) Dashboard(ctx context.Context, token string) (school.Dashboard, error) {
	var d school.Dashboard
	err := c.do(ctx, http.MethodGet, "/dashboard", token, nil, &d)
	return d, err
}
