package common

// AccessTokenHeaderName is the HTTP header used to carry the access token
// on requests to the remote backend.
const AccessTokenHeaderName = "Authorization"
