package models

// PasswordGenerationOptions are the user's saved password-generator
// preferences. The generator itself lives in the external SDK; this layer
// only persists the options per account and clears them on logout.
type PasswordGenerationOptions struct {
	Length         int  `json:"length,omitempty"`
	Lowercase      bool `json:"lowercase,omitempty"`
	Uppercase      bool `json:"uppercase,omitempty"`
	Numbers        bool `json:"numbers,omitempty"`
	Special        bool `json:"special,omitempty"`
	MinNumber      int  `json:"min_number,omitempty"`
	MinSpecial     int  `json:"min_special,omitempty"`
	AvoidAmbiguous bool `json:"avoid_ambiguous,omitempty"`

	// Passphrase-mode settings.
	NumWords       int    `json:"num_words,omitempty"`
	WordSeparator  string `json:"word_separator,omitempty"`
	Capitalize     bool   `json:"capitalize,omitempty"`
	IncludeNumber  bool   `json:"include_number,omitempty"`
	GeneratorType  string `json:"generator_type,omitempty"`
	OverridePolicy bool   `json:"override_policy,omitempty"`
}

// UsernameGenerationOptions are the user's saved username-generator
// preferences, persisted per account and opaque to this layer beyond storage.
type UsernameGenerationOptions struct {
	Type               string `json:"type,omitempty"`
	PlusAddressedEmail string `json:"plus_addressed_email,omitempty"`
	CatchAllDomain     string `json:"catch_all_domain,omitempty"`
	ForwardedService   string `json:"forwarded_service,omitempty"`
	ForwardedAPIKey    string `json:"forwarded_api_key,omitempty"`
	WordCapitalize     bool   `json:"word_capitalize,omitempty"`
	WordIncludeNumber  bool   `json:"word_include_number,omitempty"`
}
