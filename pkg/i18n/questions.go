package i18n

// Arabic prompts for symptom questions, keyed by symptom key. English
// prompts live on the question catalog itself; keys shared between
// device types reuse one translation.
var questionPrompts = map[string]string{
	// computer: overheating
	"fan_noise":         "هل المروحة تصدر صوت عالي؟",
	"hot_surface":       "هل الجهاز ساخن عند لمسه؟",
	"thermal_paste_old": "هل الكمبيوتر عمره أكثر من 3 سنوات بدون تغيير المعجون الحراري؟",
	"poor_ventilation":  "هل الكمبيوتر في مكان مغلق أو مليء بالغبار؟",
	"high_cpu_usage":    "هل استخدام المعالج مرتفع باستمرار؟",

	// computer: slow performance
	"ram_usage":        "هل استخدام الذاكرة مرتفع (فوق 80%)؟",
	"hdd_type":         "ما نوع وحدة التخزين في الكمبيوتر؟",
	"startup_programs": "هل هناك برامج كثيرة تبدأ مع النظام؟",
	"malware_detected": "هل تم اكتشاف أي فيروسات مؤخراً؟",
	"os_outdated":      "هل نظام التشغيل قديم؟",

	// computer: startup failure
	"power_led":    "هل ضوء الطاقة يعمل؟",
	"beep_codes":   "هل هناك أصوات صفير عند التشغيل؟",
	"boot_loop":    "هل الكمبيوتر يعيد التشغيل بشكل متكرر؟",
	"black_screen": "هل الشاشة سوداء تماماً؟",
	"fans_running": "هل المراوح تعمل؟",

	// computer: network issues
	"adapter_disabled":       "هل محول الشبكة مفعل؟",
	"dns_error":              "هل تظهر أخطاء DNS؟",
	"ethernet_no_connection": "هل هذه مشكلة في اتصال الإيثرنت؟",
	"driver_outdated":        "هل تعريفات الشبكة محدثة؟",

	// computer: screen problems
	"flickering":       "هل الشاشة ترمش؟",
	"dead_pixels":      "هل توجد بكسلات ميتة أو عالقة؟",
	"dim_display":      "هل الشاشة خافتة بشكل غير طبيعي؟",
	"color_distortion": "هل الألوان تظهر بشكل غير صحيح؟",

	// computer: storage issues
	"disk_full":          "هل القرص ممتلئ تقريباً؟",
	"drive_not_detected": "هل هناك قرص لا يتم التعرف عليه؟",
	"disk_read_errors":   "هل هناك أخطاء في القراءة/الكتابة؟",

	// audio (both devices)
	"no_sound":                "هل لا يوجد صوت على الإطلاق؟",
	"crackling_audio":         "هل الصوت يطقطق أو مشوه؟",
	"headphones_not_detected": "هل لا يتم التعرف على السماعات؟",

	// computer: hardware failure
	"blue_screen":      "هل تظهر شاشة زرقاء؟",
	"usb_ports_dead":   "هل منافذ USB لا تعمل؟",
	"random_shutdowns": "هل الكمبيوتر ينطفئ بشكل عشوائي؟",
	"clicking_sounds":  "هل تسمع أصوات نقر من الكمبيوتر؟",

	// computer: app crashes
	"specific_app":      "هل تطبيق واحد فقط يتعطل؟",
	"all_apps_crashing": "هل عدة تطبيقات تتعطل؟",
	"games_crashing":    "هل الألعاب تحديداً تتعطل؟",

	// computer: battery issues
	"battery_drain_fast": "هل البطارية تنفد أسرع من المتوقع؟",
	"not_charging":       "هل اللابتوب لا يشحن؟",
	"battery_swollen":    "هل البطارية منتفخة بشكل ملحوظ؟",

	// mobile: battery issues
	"battery_drain":      "ما سرعة نفاد البطارية؟",
	"screen_brightness":  "هل سطوع الشاشة عالي عادةً؟",
	"background_apps":    "هل هناك تطبيقات كثيرة تعمل في الخلفية؟",
	"location_always_on": "هل الموقع/GPS يعمل دائماً؟",
	"charging_slow":      "هل الشحن أبطأ من المعتاد؟",

	// mobile: overheating
	"hot_while_charging": "هل يسخن أثناء الشحن؟",
	"hot_during_games":   "هل يسخن أثناء الألعاب؟",
	"hot_always":         "هل ساخن دائماً حتى مع الاستخدام الخفيف؟",

	// mobile: slow performance
	"storage_full":  "هل مساحة التخزين ممتلئة تقريباً؟",
	"too_many_apps": "هل هناك تطبيقات كثيرة مثبتة؟",
	"ram_low":       "هل الذاكرة المتاحة منخفضة عادةً؟",

	// mobile: network issues
	"wifi_not_connecting":     "هل الواي فاي لا يتصل؟",
	"mobile_data_not_working": "هل بيانات الموبايل لا تعمل؟",
	"bluetooth_not_pairing":   "هل البلوتوث لا يقترن؟",
	"no_signal":               "هل لا توجد إشارة؟",

	// mobile: screen problems
	"touch_not_responding": "هل اللمس لا يستجيب؟",
	"ghost_touches":        "هل هناك لمسات وهمية؟",
	"screen_flickering":    "هل الشاشة ترمش؟",

	// mobile: app crashes
	"app_crashing":           "هل تطبيق معين يتعطل؟",
	"app_outdated":           "هل التطبيق المشكل قديم؟",
	"multiple_apps_crashing": "هل عدة تطبيقات تتعطل؟",

	// mobile: storage issues
	"storage_full_warning": "هل يظهر تحذير امتلاء التخزين؟",
	"sd_card_not_detected": "هل بطاقة SD لا يتم التعرف عليها؟",

	// mobile: startup failure
	"stuck_on_logo":       "هل الجهاز عالق على الشعار؟",
	"not_turning_on":      "هل الجهاز لا يعمل؟",
	"restarting_randomly": "هل الجهاز يعيد التشغيل عشوائياً؟",

	// mobile: hardware failure
	"camera_not_working":      "هل الكاميرا لا تعمل؟",
	"fingerprint_not_working": "هل مستشعر البصمة لا يعمل؟",
	"buttons_not_working":     "هل الأزرار لا تعمل؟",
}

// QuestionPrompt returns the localized prompt for a symptom key, falling
// back to the given base-language prompt when no translation exists.
func QuestionPrompt(key, fallback, lang string) string {
	if lang == LangArabic {
		if text, ok := questionPrompts[key]; ok {
			return text
		}
	}
	return fallback
}
