package checklist

// Category selects which fixed inspection item set applies to a device.
// The two sets are disjoint in meaning and must never be conflated: switching
// category invalidates every previously captured judgment.
type Category string

const (
	CategoryAndroid Category = "android"
	CategoryIOS     Category = "ios"
)

// Item is a single inspection point within a category's ordered set.
type Item struct {
	ID    string
	Label string
}

// ItemStatus is the captured judgment for one inspection item.
type ItemStatus string

const (
	StatusUnset        ItemStatus = ""
	StatusWorking      ItemStatus = "working"
	StatusDefective    ItemStatus = "defective"
	StatusNotTested    ItemStatus = "not_tested"
	StatusNotAvailable ItemStatus = "not_available"
)

var androidItems = []Item{
	{ID: "screen", Label: "Screen / Display"},
	{ID: "touch", Label: "Touch Screen"},
	{ID: "speaker", Label: "Loudspeaker"},
	{ID: "earpiece", Label: "Earpiece"},
	{ID: "microphone", Label: "Microphone"},
	{ID: "camera_front", Label: "Front Camera"},
	{ID: "camera_back", Label: "Rear Camera"},
	{ID: "wifi", Label: "Wi-Fi"},
	{ID: "bluetooth", Label: "Bluetooth"},
	{ID: "mobile_data", Label: "Mobile Data"},
	{ID: "charging", Label: "Charging"},
	{ID: "battery", Label: "Battery"},
	{ID: "fingerprint", Label: "Fingerprint Reader"},
	{ID: "buttons_volume", Label: "Volume Buttons"},
	{ID: "button_power", Label: "Power Button"},
	{ID: "sim_tray", Label: "SIM Tray"},
	{ID: "sim_card", Label: "SIM Reading"},
	{ID: "vibration", Label: "Vibration"},
	{ID: "proximity_sensor", Label: "Proximity Sensor"},
	{ID: "gyroscope", Label: "Gyroscope"},
	{ID: "gps", Label: "GPS"},
	{ID: "nfc", Label: "NFC"},
	{ID: "flash", Label: "Flash"},
	{ID: "sd_card", Label: "SD Card Slot"},
}

var iosItems = []Item{
	{ID: "screen", Label: "Screen / Display"},
	{ID: "touch", Label: "Touch Screen"},
	{ID: "3d_touch", Label: "3D Touch / Haptic Touch"},
	{ID: "face_id", Label: "Face ID"},
	{ID: "touch_id", Label: "Touch ID"},
	{ID: "speaker", Label: "Loudspeaker"},
	{ID: "earpiece", Label: "Earpiece"},
	{ID: "microphone", Label: "Microphone"},
	{ID: "camera_front", Label: "Front Camera (TrueDepth)"},
	{ID: "camera_back", Label: "Rear Camera"},
	{ID: "camera_ultrawide", Label: "Ultra Wide Camera"},
	{ID: "lidar", Label: "LiDAR Scanner"},
	{ID: "wifi", Label: "Wi-Fi"},
	{ID: "bluetooth", Label: "Bluetooth"},
	{ID: "mobile_data", Label: "Mobile Data"},
	{ID: "charging", Label: "Lightning/USB-C Charging"},
	{ID: "wireless_charging", Label: "Wireless Charging"},
	{ID: "battery", Label: "Battery"},
	{ID: "buttons_volume", Label: "Volume Buttons"},
	{ID: "button_power", Label: "Side Button"},
	{ID: "silent_switch", Label: "Silent Switch"},
	{ID: "sim_tray", Label: "SIM Tray"},
	{ID: "sim_card", Label: "SIM / eSIM Reading"},
	{ID: "vibration", Label: "Taptic Engine"},
	{ID: "proximity_sensor", Label: "Proximity Sensor"},
	{ID: "gyroscope", Label: "Gyroscope"},
	{ID: "gps", Label: "GPS"},
	{ID: "nfc", Label: "NFC / Apple Pay"},
	{ID: "flash", Label: "True Tone Flash"},
	{ID: "truetone_display", Label: "True Tone Display"},
}

// Categories returns the supported device categories in display order.
func Categories() []Category {
	return []Category{CategoryAndroid, CategoryIOS}
}

// Items returns a copy of the ordered inspection item set for a category,
// or nil for an unknown category.
func Items(c Category) []Item {
	var src []Item
	switch c {
	case CategoryAndroid:
		src = androidItems
	case CategoryIOS:
		src = iosItems
	default:
		return nil
	}

	items := make([]Item, len(src))
	copy(items, src)
	return items
}

// Statuses returns the assignable item statuses in display order.
// StatusUnset is the absence of a judgment, not an assignable value.
func Statuses() []ItemStatus {
	return []ItemStatus{StatusWorking, StatusDefective, StatusNotTested, StatusNotAvailable}
}

// Valid reports whether s is an assignable status.
func (s ItemStatus) Valid() bool {
	switch s {
	case StatusWorking, StatusDefective, StatusNotTested, StatusNotAvailable:
		return true
	}
	return false
}

// Label returns the display label for a status.
func (s ItemStatus) Label() string {
	switch s {
	case StatusWorking:
		return "Working"
	case StatusDefective:
		return "Defective"
	case StatusNotTested:
		return "Not Tested"
	case StatusNotAvailable:
		return "Not Present"
	default:
		return ""
	}
}

// Label returns the display label for a category.
func (c Category) Label() string {
	switch c {
	case CategoryAndroid:
		return "Android"
	case CategoryIOS:
		return "iOS"
	default:
		return string(c)
	}
}
