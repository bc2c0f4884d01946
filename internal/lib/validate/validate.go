// Package validate реализует проверку учетных данных: формат электронной
// почты и требования к надежности пароля. Проверки чисто строковые,
// без обращения к сети или DNS.
package validate

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// emailPattern: локальная часть из букв, цифр, точки и дефиса с необязательным
// +tag, затем домен того же алфавита и буквенно-цифровой суффикс зоны.
// Буквы и цифры — Unicode-классы, а не только ASCII: адреса с национальными
// алфавитами допустимы и в локальной части, и в домене.
var emailPattern = regexp.MustCompile(`^[\p{L}\p{N}_.-]+(\+[\p{L}\p{N}_.-]+)?@[\p{L}\p{N}_.-]+\.[\p{L}\p{N}_]+$`)

// специальные символы, один из которых обязан присутствовать в пароле
const passwordPunct = "!@#$%^&*()_+{}[]:;<>,.?`~"

// Email сообщает, соответствует ли строка допустимому формату адреса.
func Email(email string) bool {
	return emailPattern.MatchString(email)
}

// Password проверяет надежность пароля: длина не меньше 8 символов,
// хотя бы одна заглавная буква, хотя бы одна цифра и хотя бы один
// специальный символ из фиксированного набора.
func Password(password string) bool {
	if utf8.RuneCountInString(password) < 8 {
		return false
	}
	var hasUpper, hasDigit, hasPunct bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordPunct, r):
			hasPunct = true
		}
	}
	return hasUpper && hasDigit && hasPunct
}
