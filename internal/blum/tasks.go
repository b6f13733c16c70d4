package blum

import (
	"context"
	"fmt"
	"net/url"

	"github.com/osse101/BlumBot_Go/internal/domain"
)

type taskStatus struct {
	Status string `json:"status"`
}

// Tasks fetches the task tree from the earn service
func (c *Client) Tasks(ctx context.Context) ([]domain.TaskSection, error) {
	var sections []domain.TaskSection
	if err := c.getJSON(ctx, OpTasks, c.urls.Earn+domain.PathTasks, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

// StartTask starts one task; the body of the answer is ignored
func (c *Client) StartTask(ctx context.Context, id string) error {
	return c.postJSON(ctx, OpStartTask, c.taskURL(domain.PathTaskStart, id), nil, nil)
}

// ClaimTask claims a finished task and returns the status the server reports
func (c *Client) ClaimTask(ctx context.Context, id string) (string, error) {
	var body taskStatus
	if err := c.postJSON(ctx, OpClaimTask, c.taskURL(domain.PathTaskClaim, id), nil, &body); err != nil {
		return "", err
	}
	return body.Status, nil
}

// ValidateTask submits the verification keyword and returns the resulting status
func (c *Client) ValidateTask(ctx context.Context, id, keyword string) (string, error) {
	var body taskStatus
	payload := map[string]string{"keyword": keyword}
	if err := c.postJSON(ctx, OpValidateTask, c.taskURL(domain.PathTaskValidate, id), payload, &body); err != nil {
		return "", err
	}
	return body.Status, nil
}

func (c *Client) taskURL(pattern, id string) string {
	return c.urls.Earn + fmt.Sprintf(pattern, url.PathEscape(id))
}
