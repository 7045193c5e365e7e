package navigation

import (
	_ "embed"
	"encoding/json"
	"phoenix/shared/constant"
	"slices"

	"github.com/rs/zerolog/log"
)

//go:embed navigation.json
var navigationData []byte

// Item is a single sidebar entry rendered for a signed-in user.
type Item struct {
	Label string `json:"label"`
	Path  string `json:"path"`
	Icon  string `json:"icon"`
}

type RoleNavigation struct {
	Role  string `json:"role"`
	Home  string `json:"home"`
	Items []Item `json:"items"`
}

type NavigationData struct {
	Roles []RoleNavigation `json:"roles"`
}

// FindRole returns the navigation block for a role. Unknown roles get an
// empty block; callers fall back to the public landing page.
func (n *NavigationData) FindRole(role string) RoleNavigation {
	idx := slices.IndexFunc(n.Roles, func(rn RoleNavigation) bool {
		return rn.Role == role
	})

	if idx == -1 {
		return RoleNavigation{}
	}

	return n.Roles[idx]
}

// HomeRoute maps a role to its dashboard root. Every redirect after sign-in
// or a denied page goes through here.
func (n *NavigationData) HomeRoute(role string) string {
	found := n.FindRole(role)
	if found.Home == "" {
		return constant.RouteHome
	}

	return found.Home
}

// Items returns the sidebar entries for a role, empty for unknown roles.
func (n *NavigationData) Items(role string) []Item {
	return n.FindRole(role).Items
}

func Get() *NavigationData {
	var navigation NavigationData

	err := json.Unmarshal(navigationData, &navigation)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded navigation")

		return nil
	}

	log.Info().Int("roles", len(navigation.Roles)).Msg("Successfully loaded embedded navigation")

	return &navigation
}
