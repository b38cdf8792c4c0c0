package engine

// Generic remediation advice per category, used only when no rule fires.
// This list is deliberately not part of the rule catalog: it has no
// conditions and must never compete with authored rules during ranking.
var genericSolutions = map[string][]string{
	"overheating": {
		"Ensure proper ventilation around the device",
		"Clean dust from vents and fans",
		"Avoid using in direct sunlight or hot environments",
		"Consider replacing thermal paste (for computers)",
	},
	"slow_performance": {
		"Close unused applications",
		"Restart the device",
		"Check for available updates",
		"Free up storage space",
		"Scan for malware",
	},
	"battery_issues": {
		"Check battery health in settings",
		"Reduce screen brightness",
		"Close background applications",
		"Use original charger",
		"Consider battery replacement if old",
	},
	"network_issues": {
		"Toggle airplane mode on and off",
		"Restart the router/modem",
		"Forget and reconnect to network",
		"Update network drivers",
		"Check for service outages",
	},
	"startup_failure": {
		"Perform a hard reset",
		"Check power connections",
		"Try booting in safe mode",
		"Check for recent hardware changes",
	},
	"screen_problems": {
		"Restart the device",
		"Check display connections",
		"Adjust display settings",
		"Update display drivers",
	},
	"storage_issues": {
		"Delete unnecessary files",
		"Clear app caches",
		"Move files to cloud storage",
		"Check for disk errors",
	},
	"audio_problems": {
		"Check volume settings",
		"Ensure correct output device is selected",
		"Update audio drivers",
		"Test with different audio source",
	},
	"app_crashes": {
		"Update the application",
		"Clear app cache and data",
		"Reinstall the application",
		"Check for system updates",
	},
	"hardware_failure": {
		"Restart the device",
		"Check all connections",
		"Run hardware diagnostics",
		"Consult a professional technician",
	},
}

var genericSolutionsArabic = map[string][]string{
	"overheating": {
		"تأكد من وجود تهوية جيدة حول الجهاز",
		"نظف الغبار من فتحات التهوية والمراوح",
		"تجنب الاستخدام تحت أشعة الشمس المباشرة",
	},
	"slow_performance": {
		"أغلق التطبيقات غير المستخدمة",
		"أعد تشغيل الجهاز",
		"تحقق من التحديثات المتاحة",
		"وفّر مساحة تخزين",
	},
	"battery_issues": {
		"تحقق من صحة البطارية في الإعدادات",
		"قلل سطوع الشاشة",
		"أغلق التطبيقات في الخلفية",
		"استخدم الشاحن الأصلي",
	},
	"network_issues": {
		"فعّل وضع الطيران ثم أوقفه",
		"أعد تشغيل جهاز التوجيه",
		"انسَ الشبكة ثم أعد الاتصال بها",
	},
	"startup_failure": {
		"نفّذ إعادة تشغيل قسرية",
		"تحقق من توصيلات الطاقة",
		"جرّب الإقلاع في الوضع الآمن",
	},
	"screen_problems": {
		"أعد تشغيل الجهاز",
		"تحقق من توصيلات الشاشة",
		"حدّث تعريفات الشاشة",
	},
	"storage_issues": {
		"احذف الملفات غير الضرورية",
		"امسح ذاكرة التخزين المؤقت للتطبيقات",
		"انقل الملفات إلى التخزين السحابي",
	},
	"audio_problems": {
		"تحقق من إعدادات الصوت",
		"تأكد من اختيار جهاز الإخراج الصحيح",
		"حدّث تعريفات الصوت",
	},
	"app_crashes": {
		"حدّث التطبيق",
		"امسح بيانات التطبيق وذاكرته المؤقتة",
		"أعد تثبيت التطبيق",
	},
	"hardware_failure": {
		"أعد تشغيل الجهاز",
		"تحقق من جميع التوصيلات",
		"استشر فنيًا متخصصًا",
	},
}

// GenericSolutions returns the static generic remediation list for a
// category, with a last-resort default for unknown categories.
func GenericSolutions(category string) []string {
	if sols, ok := genericSolutions[category]; ok {
		return sols
	}
	return []string{"Restart the device and try again", "Consult technical support"}
}

func genericSolutionsAr(category string) []string {
	if sols, ok := genericSolutionsArabic[category]; ok {
		return sols
	}
	return []string{"أعد تشغيل الجهاز وحاول مجددًا", "تواصل مع الدعم الفني"}
}
