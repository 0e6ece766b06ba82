package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// Module names gate groups of workflows. A role maps to the set of modules
// it may invoke; the table is consulted once per request.
const (
	ModulePatients     = "patients"
	ModuleRecords      = "records"
	ModuleAppointments = "appointments"
	ModuleBilling      = "billing"
	ModuleInventory    = "inventory"
	ModulePharmacy     = "pharmacy"
	ModuleAudit        = "audit"
	ModuleReports      = "reports"
)

// roleModules is the authorization table. Role names are matched after
// lower-casing; a role absent from the table gates zero modules (fail
// closed), so unknown or custom roles get "no modules" rather than default
// access.
var roleModules = map[string][]string{
	"admin": {
		ModulePatients, ModuleRecords, ModuleAppointments, ModuleBilling,
		ModuleInventory, ModulePharmacy, ModuleAudit, ModuleReports,
	},
	"receptionist": {
		ModulePatients, ModuleAppointments, ModuleBilling, ModuleReports,
	},
	"doctor": {
		ModulePatients, ModuleRecords, ModuleAppointments, ModulePharmacy, ModuleReports,
	},
	"pharmacist": {
		ModuleInventory, ModulePharmacy,
	},
}

// ModulesForRole returns the modules a role may use. Unknown roles return
// an empty set.
func ModulesForRole(role string) []string {
	mods, ok := roleModules[strings.ToLower(role)]
	if !ok {
		return []string{}
	}
	out := make([]string, len(mods))
	copy(out, mods)
	return out
}

// HasModule reports whether a role is permitted to use a module.
func HasModule(role, module string) bool {
	for _, m := range roleModules[strings.ToLower(role)] {
		if m == module {
			return true
		}
	}
	return false
}

// RequireModule returns middleware rejecting callers whose role does not
// grant the named module.
func RequireModule(module string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p := PrincipalFromContext(c.Request().Context())
			if p == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if !HasModule(p.Role, module) {
				return echo.NewHTTPError(http.StatusForbidden,
					fmt.Sprintf("role %q has no access to module %q", p.Role, module))
			}
			return next(c)
		}
	}
}
