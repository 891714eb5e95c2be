// Package constants defines shared constant values used across layers.
package constants

// Runtime environment names, matched against the env.env config value.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider identifiers, matched against the pubsub.provider config value.
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Domain event types published when workflow state changes.
const (
	EventCourseRequestSubmitted = "course_request.submitted"
	EventCourseRequestCompleted = "course_request.completed"
	EventCourseApproved         = "course.approved"
	EventCourseRejected         = "course.rejected"
)
