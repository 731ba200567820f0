package app

// ViewPort is the rendering surface the presenter pushes into. One
// setter per displayable field; implementations carry no logic beyond
// mutating their surface (browser DOM, terminal, test double).
type ViewPort interface {
	// Weather fields.
	SetTemperature(value string)
	SetCity(value string)
	SetCountry(value string)
	SetCondition(value string)
	SetWind(value string)
	SetIcon(url string)

	// Clock field.
	SetTime(value string)

	// Player fields.
	SetPlayerFirstName(value string)
	SetPlayerLastName(value string)
	SetPlayerCountry(value string)
	SetPlayerHeight(value string)
	SetPlayerPosition(value string)
	SetPlayerTeam(value string)

	// Video field.
	SetVideoID(id string)

	// ShowNotice surfaces a single user-visible failure message.
	ShowNotice(msg string)

	// BindLocationInput registers the callback invoked when the user
	// submits a new location.
	BindLocationInput(fn func(location string))
}
