package kb

// Question is one follow-up symptom prompt. Only Key feeds the matcher;
// Prompt and Options belong to the dialogue layer and are localized there.
type Question struct {
	Key     string
	Prompt  string
	Options []string
}

// QuestionsFor returns the ordered symptom questions for a device type
// and category. Unknown combinations return nil, which the dialogue layer
// treats as "nothing more to ask".
func QuestionsFor(device, category string) []Question {
	if device == "mobile" {
		return mobileQuestions[category]
	}
	return computerQuestions[category]
}

var computerQuestions = map[string][]Question{
	"overheating": {
		{"fan_noise", "Is the fan making loud noise?", []string{"yes", "no", "sometimes"}},
		{"hot_surface", "Is the device hot to touch?", []string{"yes", "no"}},
		{"thermal_paste_old", "Is the computer more than 3 years old without thermal paste change?", []string{"yes", "no", "unsure"}},
		{"poor_ventilation", "Is the computer in an enclosed or dusty area?", []string{"yes", "no"}},
		{"high_cpu_usage", "Is CPU usage constantly high?", []string{"yes", "no", "unsure"}},
	},
	"slow_performance": {
		{"ram_usage", "Is RAM usage high (above 80%)?", []string{"high", "normal", "unsure"}},
		{"hdd_type", "What type of storage does the computer have?", []string{"mechanical", "ssd", "unsure"}},
		{"startup_programs", "Are there many programs that start with the system?", []string{"many", "few", "unsure"}},
		{"malware_detected", "Has any malware been detected recently?", []string{"yes", "no", "unsure"}},
		{"os_outdated", "Is the operating system outdated?", []string{"yes", "no", "unsure"}},
	},
	"startup_failure": {
		{"power_led", "Is the power LED on?", []string{"on", "off", "blinking"}},
		{"beep_codes", "Are there any beep sounds on startup?", []string{"yes", "no"}},
		{"boot_loop", "Does the computer restart repeatedly?", []string{"yes", "no"}},
		{"black_screen", "Is the screen completely black?", []string{"yes", "no"}},
		{"fans_running", "Are the fans running?", []string{"yes", "no"}},
	},
	"network_issues": {
		{"adapter_disabled", "Is the network adapter enabled?", []string{"yes", "no", "unsure"}},
		{"dns_error", "Are you getting DNS errors?", []string{"yes", "no", "unsure"}},
		{"ethernet_no_connection", "Is this an ethernet connection issue?", []string{"yes", "no"}},
		{"driver_outdated", "Are network drivers updated?", []string{"yes", "no", "unsure"}},
	},
	"screen_problems": {
		{"flickering", "Is the screen flickering?", []string{"yes", "no"}},
		{"dead_pixels", "Are there dead or stuck pixels?", []string{"yes", "no"}},
		{"dim_display", "Is the display unusually dim?", []string{"yes", "no"}},
		{"color_distortion", "Are colors displayed incorrectly?", []string{"yes", "no"}},
	},
	"storage_issues": {
		{"disk_full", "Is the disk almost full?", []string{"yes", "no"}},
		{"drive_not_detected", "Is a drive not being detected?", []string{"yes", "no"}},
		{"disk_read_errors", "Are there disk read/write errors?", []string{"yes", "no", "unsure"}},
	},
	"audio_problems": {
		{"no_sound", "Is there no sound at all?", []string{"yes", "no"}},
		{"crackling_audio", "Is the audio crackling or distorted?", []string{"yes", "no"}},
		{"headphones_not_detected", "Are headphones/speakers not detected?", []string{"yes", "no"}},
	},
	"hardware_failure": {
		{"blue_screen", "Are you getting blue screen errors?", []string{"yes", "no"}},
		{"usb_ports_dead", "Are USB ports not working?", []string{"yes", "no"}},
		{"random_shutdowns", "Does the computer shut down randomly?", []string{"yes", "no"}},
		{"clicking_sounds", "Are there clicking sounds from the computer?", []string{"yes", "no"}},
	},
	"app_crashes": {
		{"specific_app", "Is only one specific app crashing?", []string{"yes", "no"}},
		{"all_apps_crashing", "Are multiple apps crashing?", []string{"yes", "no"}},
		{"games_crashing", "Do games specifically crash?", []string{"yes", "no"}},
	},
	"battery_issues": {
		{"battery_drain_fast", "Is the battery draining faster than expected?", []string{"yes", "no"}},
		{"not_charging", "Is the laptop not charging?", []string{"yes", "no"}},
		{"battery_swollen", "Is the battery visibly swollen?", []string{"yes", "no"}},
	},
}

var mobileQuestions = map[string][]Question{
	"battery_issues": {
		{"battery_drain", "How fast is the battery draining?", []string{"fast", "normal", "slow"}},
		{"screen_brightness", "Is screen brightness usually high?", []string{"high", "medium", "low"}},
		{"background_apps", "Are there many apps running in background?", []string{"many", "few", "unsure"}},
		{"location_always_on", "Is location/GPS always on?", []string{"yes", "no"}},
		{"charging_slow", "Is charging slower than usual?", []string{"yes", "no"}},
	},
	"overheating": {
		{"hot_while_charging", "Does it get hot while charging?", []string{"yes", "no"}},
		{"hot_during_games", "Does it overheat during gaming?", []string{"yes", "no"}},
		{"hot_always", "Is it always hot even during light use?", []string{"yes", "no"}},
	},
	"slow_performance": {
		{"storage_full", "Is storage almost full?", []string{"yes", "no", "unsure"}},
		{"too_many_apps", "Are there many apps installed?", []string{"yes", "no"}},
		{"os_outdated", "Is the OS outdated?", []string{"yes", "no", "unsure"}},
		{"ram_low", "Is available RAM usually low?", []string{"yes", "no", "unsure"}},
	},
	"network_issues": {
		{"wifi_not_connecting", "Is WiFi not connecting?", []string{"yes", "no"}},
		{"mobile_data_not_working", "Is mobile data not working?", []string{"yes", "no"}},
		{"bluetooth_not_pairing", "Is Bluetooth not pairing?", []string{"yes", "no"}},
		{"no_signal", "Is there no cell signal?", []string{"yes", "no"}},
	},
	"screen_problems": {
		{"touch_not_responding", "Is touch not responding?", []string{"yes", "no", "sometimes"}},
		{"ghost_touches", "Are there ghost/phantom touches?", []string{"yes", "no"}},
		{"screen_flickering", "Is the screen flickering?", []string{"yes", "no"}},
	},
	"app_crashes": {
		{"app_crashing", "Is a specific app crashing?", []string{"yes", "no"}},
		{"app_outdated", "Is the problematic app outdated?", []string{"yes", "no", "unsure"}},
		{"multiple_apps_crashing", "Are multiple apps crashing?", []string{"yes", "no"}},
	},
	"storage_issues": {
		{"storage_full_warning", "Is there a storage full warning?", []string{"yes", "no"}},
		{"sd_card_not_detected", "Is SD card not detected?", []string{"yes", "no", "no_sd"}},
	},
	"audio_problems": {
		{"no_sound", "Is there no sound from speakers?", []string{"yes", "no"}},
		{"headphones_not_detected", "Are headphones not detected?", []string{"yes", "no"}},
	},
	"startup_failure": {
		{"stuck_on_logo", "Is device stuck on logo?", []string{"yes", "no"}},
		{"not_turning_on", "Is device not turning on?", []string{"yes", "no"}},
		{"restarting_randomly", "Is device restarting randomly?", []string{"yes", "no"}},
	},
	"hardware_failure": {
		{"camera_not_working", "Is the camera not working?", []string{"yes", "no"}},
		{"fingerprint_not_working", "Is fingerprint sensor not working?", []string{"yes", "no"}},
		{"buttons_not_working", "Are physical buttons not working?", []string{"yes", "no"}},
	},
}
