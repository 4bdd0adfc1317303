// Package complaint models customer complaints and their response workflow.
//
// A complaint starts as Pending with response "None". Staff respond to it, which sets the
// response text and moves it to Resolved. A resolved complaint stays resolved: later edits
// may change its text or response but never reopen it.
package complaint
