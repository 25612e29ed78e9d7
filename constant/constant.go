package constant

const (
	ProjectName = "gweather"

	// DefaultHistorySize is the number of recent searches kept on disk.
	DefaultHistorySize = 10
	HistoryFileName    = "search_history.json"
	PrefsFileName      = "user_preferences.json"

	DefaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"
	// IconURLFormat renders a condition icon code into a fetchable image url.
	IconURLFormat = "https://openweathermap.org/img/wn/%s@2x.png"
)
