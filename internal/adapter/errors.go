package adapter

import "errors"

var (
	// ErrHostedObjectNotFound reports that the provider holds no object
	// with the given public id.
	ErrHostedObjectNotFound = errors.New("hosted object not found")

	// ErrMediaHostRequest covers transport failures and provider-side 5xx
	// answers.
	ErrMediaHostRequest = errors.New("media host request failed")

	// ErrMediaHostRejected reports a 4xx answer: bad credentials, invalid
	// file, quota exceeded.
	ErrMediaHostRejected = errors.New("media host rejected request")

	ErrUnknownMediaProvider = errors.New("unknown media provider")
)
