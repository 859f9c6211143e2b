// Package admin backs the back-office tables: products, orders, users and
// reviews. Every service follows the same shape: a paginated table fetch, a
// search fetch on demand, and mutations that refetch the current page on
// success so the table never shows stale rows. Deletes require an explicit
// confirmation flag. No cross-resource consistency is enforced here; that is
// the backend's job.
package admin

import "errors"

// ErrConfirmRequired is returned when a delete is attempted without the
// explicit confirmation step.
var ErrConfirmRequired = errors.New("delete requires confirmation")

const defaultPageSize = 10
