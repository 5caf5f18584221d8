// Package timezone pins every wall-clock computation to the facility timezone.
//
// Check-in, appointment and detention arithmetic compare local clock values
// (an "0800" appointment means 08:00 at the dock), so timestamps read from
// storage are converted with ToAppTime before any HHMM comparison.
//
// The zone is read from APP_TIMEZONE on first use and must be an IANA
// name such as "America/Chicago". Unknown names fall back to UTC.
package timezone
