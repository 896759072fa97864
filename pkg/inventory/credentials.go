package inventory

import (
	"encoding/base64"
	"fmt"
)

type Credentials struct {
	ClientID     string
	ClientSecret string
}

// Authorization returns the value of the Authorization header for HTTP Basic
// authentication with the client ID and secret.
func (c Credentials) Authorization() string {
	token := base64.StdEncoding.EncodeToString([]byte(c.ClientID + ":" + c.ClientSecret))
	return "Basic " + token
}

// String never includes the secret.
func (c Credentials) String() string {
	return fmt.Sprintf("%s:<redacted>", c.ClientID)
}
