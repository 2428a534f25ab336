package services

import (
	"context"
	"fmt"
	"strings"

	"trip-router/internal/models/route_models"
	"trip-router/pkg/utils"
)

// OrderAdvisor asks an external oracle for a visiting order. The answer is
// raw text and must go through ParseOrderResponse before use.
type OrderAdvisor interface {
	Advise(ctx context.Context, locations []route_models.Waypoint, mode route_models.TransportMode) (string, error)
}

type LLMOrderAdvisor struct {
	client utils.CompletionClient
}

func NewLLMOrderAdvisor(client utils.CompletionClient) OrderAdvisor {
	return &LLMOrderAdvisor{client: client}
}

// Advise makes exactly one completion call. Any failure is reported as
// utils.ErrOracleUnavailable.
func (a *LLMOrderAdvisor) Advise(ctx context.Context, locations []route_models.Waypoint, mode route_models.TransportMode) (string, error) {
	text, err := a.client.Complete(ctx, BuildOrderPrompt(locations, mode))
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrOracleUnavailable, err)
	}
	return text, nil
}

// BuildOrderPrompt lists the waypoints with 1-based indices and asks for one
// "<n>. [Original index <k>]" line per waypoint.
func BuildOrderPrompt(locations []route_models.Waypoint, mode route_models.TransportMode) string {
	var locBuf strings.Builder
	for i, loc := range locations {
		fmt.Fprintf(&locBuf, "%d. %s: Latitude %v, Longitude %v\n", i+1, loc.Name, loc.Lat, loc.Lng)
	}

	return fmt.Sprintf(`
You are an expert route optimizer. I need to optimize a travel route between the following locations using %s as the transportation mode:

%s
Please analyze these locations and provide the optimal order to visit them to minimize total travel distance and time.

Your response should be a numbered list showing the optimal visiting order of these locations.
For each location, include only the original index number from the list above (1 to %d).

For example:
1. [Original index 3]
2. [Original index 1]
3. [Original index 4]
...

The response should ONLY contain the ordered indices in this format, nothing else.
`, mode, locBuf.String(), len(locations))
}

// DisabledOrderAdvisor is used when no oracle is configured. Every call
// fails, which sends large requests down the fallback path.
type DisabledOrderAdvisor struct {
	Reason string
}

func (d DisabledOrderAdvisor) Advise(context.Context, []route_models.Waypoint, route_models.TransportMode) (string, error) {
	return "", fmt.Errorf("%w: %s", utils.ErrOracleUnavailable, d.Reason)
}
