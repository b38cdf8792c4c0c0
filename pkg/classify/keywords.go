package classify

// keyword terms are stored in their post-Normalize form: lowercase,
// diacritics stripped, Arabic letters folded.
type keyword struct {
	term   string
	weight float64
}

var categoryKeywords = map[string][]keyword{
	"overheating": {
		{"overheat", 2}, {"overheating", 2}, {"hot", 1.5}, {"heat", 1.5},
		{"burning", 1.5}, {"temperature", 1.5}, {"fan", 1}, {"warm", 1},
		{"سخونه", 2}, {"حراره", 2}, {"ساخن", 2}, {"يسخن", 2}, {"مروحه", 1},
	},
	"slow_performance": {
		{"slow", 2}, {"sluggish", 2}, {"lag", 2}, {"lagging", 2},
		{"freeze", 1.5}, {"freezes", 1.5}, {"freezing", 1.5}, {"hangs", 1.5},
		{"performance", 1.5}, {"stuck", 1},
		{"بطيء", 2}, {"بطء", 2}, {"يعلق", 2}, {"تهنيج", 2}, {"ثقيل", 1.5},
	},
	"battery_issues": {
		{"battery", 2}, {"drain", 2}, {"drains", 2}, {"draining", 2},
		{"charge", 1.5}, {"charging", 1.5}, {"charger", 1.5}, {"dies", 1.5},
		{"بطاريه", 2}, {"شحن", 2}, {"شاحن", 1.5}, {"يفرغ", 1.5},
	},
	"network_issues": {
		{"wifi", 2}, {"internet", 2}, {"network", 2}, {"dns", 2},
		{"connection", 1.5}, {"bluetooth", 1.5}, {"signal", 1.5},
		{"ethernet", 1.5}, {"router", 1.5}, {"disconnects", 1.5},
		{"انترنت", 2}, {"شبكه", 2}, {"اتصال", 1.5}, {"اشاره", 1.5},
	},
	"startup_failure": {
		{"boot", 2}, {"booting", 2}, {"beep", 1.5}, {"logo", 1.5},
		{"start", 1}, {"starting", 1}, {"power", 1}, {"restarts", 1},
		{"يقلع", 2}, {"اقلاع", 2}, {"يشتغل", 1.5}, {"تشغيل", 1},
	},
	"screen_problems": {
		{"screen", 2}, {"display", 2}, {"flicker", 2}, {"flickering", 2},
		{"pixel", 1.5}, {"pixels", 1.5}, {"touch", 1.5}, {"dim", 1.5},
		{"brightness", 1}, {"cracked", 1.5},
		{"شاشه", 2}, {"لمس", 1.5}, {"وميض", 1.5}, {"سطوع", 1},
	},
	"storage_issues": {
		{"storage", 2}, {"disk", 2}, {"space", 1.5}, {"drive", 1.5},
		{"full", 1}, {"sd", 1.5},
		{"تخزين", 2}, {"مساحه", 2}, {"قرص", 2}, {"ذاكره", 1.5},
	},
	"audio_problems": {
		{"sound", 2}, {"audio", 2}, {"speaker", 2}, {"speakers", 2},
		{"volume", 1.5}, {"headphones", 1.5}, {"microphone", 1.5},
		{"crackling", 1.5}, {"mute", 1.5},
		{"صوت", 2}, {"سماعه", 2}, {"سماعات", 2}, {"مكبر", 1.5},
	},
	"app_crashes": {
		{"crash", 2}, {"crashes", 2}, {"crashing", 2}, {"app", 1.5},
		{"application", 1.5}, {"closes", 1.5}, {"force", 1},
		{"تطبيق", 2}, {"برنامج", 1.5}, {"ينغلق", 2}, {"يتوقف", 1.5},
	},
	"hardware_failure": {
		{"hardware", 2}, {"blue screen", 3}, {"bsod", 2}, {"usb", 1.5},
		{"keyboard", 1.5}, {"camera", 1.5}, {"fingerprint", 1.5},
		{"buttons", 1.5}, {"clicking", 1.5}, {"shuts", 1.5},
		{"عطل", 2}, {"كاميرا", 1.5}, {"ازرار", 1.5}, {"زر", 1},
	},
}
