package canvas

import (
	"go.uber.org/zap"

	"davetiye.store/configs/configslog"
)

// Adapter bir çizim yüzeyi ile JSON dokümanı arasında çift yönlü köprü.
// Doküman her zaman çağırana aittir (davetiye ya da şablon kaydı);
// adapter yüklemeler arasında kendi doküman durumu tutmaz. Kaydetme,
// bu sözleşmenin dışında açıkça yapılır.
//
// Eşzamanlı SetDocument çağrılarına karşı iç koruma yoktur: sahibi
// bir yükleme sürerken ikincisini başlatmamalıdır, son yazan kazanır.
type Adapter struct {
	surface Surface
	onReady func(Surface)
}

// NewAdapter yeni bir adapter oluşturur. onReady, yüzey hazır olduğunda
// yüzeyle, teardown'da nil ile çağrılır; sahibi şekil ekleme ve özellik
// değiştirme gibi işlemleri bu referans üzerinden kendisi sürer.
func NewAdapter(onReady func(Surface)) *Adapter {
	if onReady == nil {
		onReady = func(Surface) {}
	}
	return &Adapter{onReady: onReady}
}

// Mount container boyutlarında tek bir yüzey oluşturur ve sahibine bildirir.
func (a *Adapter) Mount(factory SurfaceFactory, width, height int) {
	if a.surface != nil {
		// Çifte mount: önce eskisini bırak
		a.Unmount()
	}
	a.surface = factory(width, height)
	a.onReady(a.surface)
}

// SetDocument dışarıdan verilen doküman her değiştiğinde çağrılır.
// Yüzey temizlenir; doküman doluysa yüzeye açılır ve repaint zorlanır.
// Açma hataları yakalanır ve loglanır, yüzey kısmi durumda bırakılır.
func (a *Adapter) SetDocument(doc []byte) {
	if a.surface == nil {
		return
	}
	a.surface.Clear()
	if len(doc) == 0 {
		return
	}
	if err := a.surface.LoadJSON(doc); err != nil {
		configslog.Log.Error("Canvas dokümanı yüklenemedi", zap.Error(err))
	}
	a.surface.Repaint()
}

// Serialize yüzeyin güncel durumunu doküman olarak döner.
func (a *Adapter) Serialize() ([]byte, error) {
	if a.surface == nil {
		return nil, ErrNotMounted
	}
	return a.surface.Serialize()
}

// Unmount önce sahibine nil bildirir, sonra yüzeyi serbest bırakır.
// Sıralama garantidir: sahibi hiçbir zaman dispose edilmiş bir yüzey
// referansı tutmaz.
func (a *Adapter) Unmount() {
	if a.surface == nil {
		return
	}
	a.onReady(nil)
	a.surface.Dispose()
	a.surface = nil
}

// CanvasError canvas adapter hataları.
type CanvasError string

func (e CanvasError) Error() string { return string(e) }

const ErrNotMounted CanvasError = "canvas yüzeyi mount edilmemiş"
