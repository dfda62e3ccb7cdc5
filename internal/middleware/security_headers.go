package middleware

import "net/http"

// SecurityHeadersMiddleware добавляет заголовки безопасности к ответам ops-листенера
func SecurityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Запрет на определение MIME-типа из содержимого
		w.Header().Set("X-Content-Type-Options", "nosniff")

		// Защита от clickjacking
		w.Header().Set("X-Frame-Options", "DENY")

		// /healthz и /metrics не грузят ни скриптов, ни стилей
		w.Header().Set("Content-Security-Policy", "default-src 'none'")

		// Состояние сервиса не кэшируем
		w.Header().Set("Cache-Control", "no-store")

		next.ServeHTTP(w, r)
	})
}
