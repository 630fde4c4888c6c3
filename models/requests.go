package models

// UploadRequest pushes a batch of encrypted items to the relay. The relay
// resolves conflicts per item with last-write-wins on DataTime, breaking
// ties on the uploading DeviceID.
type UploadRequest struct {
	// DeviceID identifies this installation for conflict tie-breaking.
	DeviceID string `json:"deviceId"`

	Items []RelayItem `json:"items"`

	// Length is the total number of entries in Items.
	Length int `json:"length"`
}

// UploadResponse reports per-item acceptance. An item is accepted when it
// replaced (or created) the relay row; rejected items lost the conflict and
// the current server revision is returned so the client can converge.
type UploadResponse struct {
	Accepted []string    `json:"accepted"`
	Rejected []RelayItem `json:"rejected,omitempty"`
}

// FetchRequest pulls items from the relay.
type FetchRequest struct {
	// Since filters to items whose DataTime is strictly greater. Zero
	// fetches everything.
	Since int64 `json:"since,omitempty"`

	// DataTypes optionally restricts the fetch to the listed types.
	DataTypes []DataType `json:"dataTypes,omitempty"`
}

// FetchResponse returns relay rows for the requesting user.
type FetchResponse struct {
	Items  []RelayItem `json:"items"`
	Length int         `json:"length"`
}

// User is a relay account. Password crosses the wire only during register
// and login; the relay stores an HMAC hash of it.
type User struct {
	UserID      int64  `json:"user_id,omitempty"`
	Login       string `json:"login"`
	Password    string `json:"password,omitempty"`
	AccountSalt string `json:"account_salt,omitempty"`
}
