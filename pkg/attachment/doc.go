// Package attachment builds Slack messages in the legacy attachment format.
//
// Unlike package blockkit nothing here is validated: every value is sent as
// given, and unset values are left out of the payload.
package attachment
