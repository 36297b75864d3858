// Package config предоставляет конфигурацию приложения с сохранением в файл.
package config

import (
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// Ключи файла конфигурации.
const (
	keyHotkeyModifiers  = "hotkey.modifiers"
	keyHotkeyKey        = "hotkey.key"
	keyNotifications    = "notifications"
	keyUILanguage       = "ui_language"
	keyTyping           = "typing"
	keyRestoreClipboard = "restore_clipboard"
	keyCopyTimeout      = "copy_timeout_ms"
)

const (
	defaultCopyTimeout = 300 * time.Millisecond
	minCopyTimeout     = 50 * time.Millisecond
	maxCopyTimeout     = 5 * time.Second
)

// DefaultHotkey - глобальная горячая клавиша по умолчанию.
// Ctrl+B остаётся приложениям, у которых свой "жирный".
func DefaultHotkey() HotkeyConfig {
	return HotkeyConfig{
		Modifiers: []Modifier{ModCtrl, ModShift},
		Key:       KeyB,
	}
}

// Config хранит настройки приложения.
type Config struct {
	mu               sync.RWMutex
	v                *viper.Viper
	uiLanguage       string
	notifications    bool
	hotkey           HotkeyConfig
	typing           bool
	restoreClipboard bool
	copyTimeout      time.Duration
	configPath       string
	onHotkeyChange   func(HotkeyConfig)
}

// DefaultPath возвращает путь к config.json рядом с бинарником.
func DefaultPath() string {
	execPath, err := os.Executable()
	if err != nil {
		return ""
	}
	// Резолвим симлинки
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return ""
	}
	return filepath.Join(filepath.Dir(execPath), "config.json")
}

// New создаёт конфигурацию, загружая из файла или с настройками по умолчанию.
// Пустой path означает DefaultPath.
func New(path string) *Config {
	if path == "" {
		path = DefaultPath()
	}

	v := viper.New()
	def := DefaultHotkey()
	mods := make([]string, 0, len(def.Modifiers))
	for _, m := range def.Modifiers {
		mods = append(mods, string(m))
	}
	v.SetDefault(keyHotkeyModifiers, mods)
	v.SetDefault(keyHotkeyKey, string(def.Key))
	v.SetDefault(keyNotifications, true)
	v.SetDefault(keyUILanguage, "ru")
	v.SetDefault(keyTyping, true)
	v.SetDefault(keyRestoreClipboard, true)
	v.SetDefault(keyCopyTimeout, defaultCopyTimeout.Milliseconds())

	c := &Config{
		v:          v,
		configPath: path,
	}

	// Пытаемся загрузить конфигурацию
	c.load()

	return c
}

// load загружает конфигурацию из файла.
func (c *Config) load() {
	if c.configPath != "" {
		c.v.SetConfigFile(c.configPath)
		c.v.SetConfigType("json")
		// Файла может не быть, тогда используем defaults
		if err := c.v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
			log.Printf("Не удалось прочитать конфигурацию %s: %v", c.configPath, err)
		}
	}

	c.uiLanguage = c.v.GetString(keyUILanguage)
	c.notifications = c.v.GetBool(keyNotifications)
	c.typing = c.v.GetBool(keyTyping)
	c.restoreClipboard = c.v.GetBool(keyRestoreClipboard)

	c.copyTimeout = time.Duration(c.v.GetInt64(keyCopyTimeout)) * time.Millisecond
	if c.copyTimeout < minCopyTimeout || c.copyTimeout > maxCopyTimeout {
		c.copyTimeout = defaultCopyTimeout
	}

	hk := HotkeyConfig{Key: Key(c.v.GetString(keyHotkeyKey))}
	for _, m := range c.v.GetStringSlice(keyHotkeyModifiers) {
		hk.Modifiers = append(hk.Modifiers, Modifier(m))
	}
	if !hk.Valid() {
		hk = DefaultHotkey()
	}
	c.hotkey = hk
}

// save сохраняет конфигурацию в файл. Вызывается под c.mu.
func (c *Config) save() {
	if c.configPath == "" {
		return
	}

	mods := make([]string, 0, len(c.hotkey.Modifiers))
	for _, m := range c.hotkey.Modifiers {
		mods = append(mods, string(m))
	}
	c.v.Set(keyHotkeyModifiers, mods)
	c.v.Set(keyHotkeyKey, string(c.hotkey.Key))
	c.v.Set(keyNotifications, c.notifications)
	c.v.Set(keyUILanguage, c.uiLanguage)
	c.v.Set(keyTyping, c.typing)
	c.v.Set(keyRestoreClipboard, c.restoreClipboard)
	c.v.Set(keyCopyTimeout, c.copyTimeout.Milliseconds())

	if err := c.v.WriteConfigAs(c.configPath); err != nil {
		log.Printf("Не удалось сохранить конфигурацию: %v", err)
	}
}

// Path возвращает путь к файлу конфигурации.
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.configPath
}

// ToggleNotifications переключает состояние уведомлений.
func (c *Config) ToggleNotifications() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifications = !c.notifications
	c.save()
	return c.notifications
}

// NotificationsEnabled возвращает true если уведомления включены.
func (c *Config) NotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.notifications
}

// Hotkey возвращает текущую горячую клавишу.
func (c *Config) Hotkey() HotkeyConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hotkey
}

// SetHotkey устанавливает горячую клавишу.
func (c *Config) SetHotkey(hk HotkeyConfig) {
	c.mu.Lock()
	c.hotkey = hk
	callback := c.onHotkeyChange
	c.save()
	c.mu.Unlock()

	if callback != nil {
		callback(hk)
	}
}

// OnHotkeyChange устанавливает callback для изменения горячей клавиши.
func (c *Config) OnHotkeyChange(fn func(HotkeyConfig)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onHotkeyChange = fn
}

// Typing возвращает true если замена выделения набором текста разрешена.
func (c *Config) Typing() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.typing
}

// SetTyping разрешает/запрещает замену набором текста.
func (c *Config) SetTyping(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.typing = enabled
	c.save()
}

// RestoreClipboard возвращает true если буфер обмена восстанавливается после замены.
func (c *Config) RestoreClipboard() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.restoreClipboard
}

// SetRestoreClipboard включает/выключает восстановление буфера обмена.
func (c *Config) SetRestoreClipboard(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.restoreClipboard = enabled
	c.save()
}

// CopyTimeout возвращает время ожидания копирования выделения.
func (c *Config) CopyTimeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.copyTimeout
}

// UILanguage возвращает язык интерфейса.
func (c *Config) UILanguage() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.uiLanguage
}

// SetUILanguage устанавливает язык интерфейса.
func (c *Config) SetUILanguage(lang string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.uiLanguage = lang
	c.save()
}
