package send_reminders

// Response итог одного прохода
type Response struct {
	Found  int // Записей в окне напоминания
	Sent   int // Отправлено и отмечено
	Failed int // Не удалось отправить или отметить
}
