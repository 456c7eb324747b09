// Package types общие типы-значения, разделяемые между слоями сервиса
package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeString время суток в строковом виде "HH:MM" или "HH:MM:SS".
// Используется для хранения времени начала/конца слотов без привязки к дате.
// Сравнения выполняются по количеству секунд с начала суток.
type TimeString string

var (
	// ErrInvalidTimeString возвращается при некорректном формате строки времени
	ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM or HH:MM:SS")

	// ErrTimeOutOfRange возвращается, когда результат арифметики выходит за пределы суток
	ErrTimeOutOfRange = errors.New("time is out of day range")
)

const secondsPerDay = 24 * 60 * 60

// NewTimeString создает TimeString из time.Time (с точностью до минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет, что строка имеет формат "HH:MM" или "HH:MM:SS"
func (t TimeString) Validate() error {
	_, err := t.daySeconds()
	return err
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// Before возвращает true, если t строго раньше other.
// Некорректные значения считаются несравнимыми (false).
func (t TimeString) Before(other TimeString) bool {
	a, err := t.daySeconds()
	if err != nil {
		return false
	}
	b, err := other.daySeconds()
	if err != nil {
		return false
	}
	return a < b
}

// After возвращает true, если t строго позже other
func (t TimeString) After(other TimeString) bool {
	return other.Before(t)
}

// Equal возвращает true, если t и other обозначают один и тот же момент суток
// ("09:00" и "09:00:00" равны)
func (t TimeString) Equal(other TimeString) bool {
	a, err := t.daySeconds()
	if err != nil {
		return false
	}
	b, err := other.daySeconds()
	if err != nil {
		return false
	}
	return a == b
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед.
// Выход за пределы суток считается ошибкой (слоты не пересекают полночь).
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	secs, err := t.daySeconds()
	if err != nil {
		return "", err
	}

	secs += minutes * 60
	if secs < 0 || secs > secondsPerDay {
		return "", fmt.Errorf("%w: %s + %d minutes", ErrTimeOutOfRange, t, minutes)
	}

	return fromDaySeconds(secs), nil
}

// Value реализует driver.Valuer для записи в колонку типа TIME
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из колонки типа TIME.
// lib/pq возвращает TIME как []byte/string, на всякий случай поддерживаем и time.Time.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case time.Time:
		*t = TimeString(v.Format("15:04:05"))
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T into TimeString", ErrInvalidTimeString, src)
	}
}

func (t *TimeString) scanString(s string) error {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return err
	}
	*t = ts
	return nil
}

// daySeconds возвращает количество секунд с начала суток
func (t TimeString) daySeconds() (int, error) {
	parts := strings.Split(string(t), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}

	nums := make([]int, 3)
	for i, p := range parts {
		if len(p) != 2 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
		}
		nums[i] = n
	}

	h, m, s := nums[0], nums[1], nums[2]

	// "24:00" допустимо как конец суток для правой границы полуинтервала
	if h == 24 && m == 0 && s == 0 {
		return secondsPerDay, nil
	}

	if h < 0 || h > 23 || m < 0 || m > 59 || s < 0 || s > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}

	return h*3600 + m*60 + s, nil
}

func fromDaySeconds(secs int) TimeString {
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60

	if s == 0 {
		return TimeString(fmt.Sprintf("%02d:%02d", h, m))
	}
	return TimeString(fmt.Sprintf("%02d:%02d:%02d", h, m, s))
}
