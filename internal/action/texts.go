package action

// Templated reply texts. These are served verbatim on the web surface; the
// CLI applies its own terminal styling.

const greetText = `👋 Merhaba! Ben CarboBot.

E-Atık Koruyucuları platformunun karbon ayak izi uzmanıyım.

Size nasıl yardımcı olabilirim?

💡 Popüler sorular:
• "En yakın toplama noktası nerede?"
• "Nasıl atık bildirebilirim?"
• "E-atık nedir ve neden önemli?"
• "Cihazımın değeri ne kadar?"
• "Ne kadar CO₂ tasarrufu yaptık?"

💬 İpucu: "yardım" yazarak tüm yeteneklerimi görebilirsiniz.`

const helpText = `🤖 CarboBot - Yardım Menüsü

📍 Konum & Harita
• "En yakın toplama noktası nerede?"
• "Bana en yakın merkez hangisi?"
• "Adres ve yol tarifi"

♻️ Geri Dönüşüm Rehberi
• "Nasıl atık bildirebilirim?"
• "Hangi cihazlar kabul ediliyor?"
• "Geri dönüşüm süreci nasıl işliyor?"

💰 Cihaz Değerlendirme
• "Cihazımın değeri ne kadar?"
• "iPhone ne kadar eder?"

📊 Çevresel Etki & İstatistikler
• "Toplam CO₂ tasarrufumuz ne kadar?"
• "Ne kadar enerji tasarrufu yaptık?"
• "Su tasarrufu istatistikleri"

🎓 E-Atık Eğitimi
• "E-atık nedir?"
• "E-atığın çevreye zararları neler?"
• "Hangi metaller geri kazanılıyor?"

💬 Aklına takılan her şeyi sorabilirsin! Ben buradayım. 🌱`

const recycleGuideText = `📱 E-atık Bildirimi Nasıl Yapılır?

1. Ana sayfada "Atık Bildir" butonuna tıklayın
2. Cihazınızın fotoğrafını yükleyin
3. AI analiz sonucunu bekleyin (30 saniye)
4. Size en yakın toplama noktasını seçin
5. Tamamlandı! 🎉

💡 İpucu: Cihazın tüm taraflarının görüneceği şekilde fotoğraf çekin.

Hemen başlamak için: http://localhost:5173`

const ewasteInfoText = `🌍 E-Atık Nedir?

Elektronik atık (e-atık), kullanım ömrünü tamamlamış elektronik cihazlardır.

📱 Örnekler:
• Telefonlar, tabletler
• Bilgisayarlar, laptoplar
• Televizyonlar
• Akıllı saatler
• Ev aletleri

⚠️ Tehlikeleri:
• Ağır metaller (kurşun, cıva, kadmiyum)
• Toprak ve su kirliliği
• İnsan sağlığına zarar
• Doğada 1000+ yıl kalabilir

✅ Çözüm:
Güvenli geri dönüşüm ile hem doğayı koruyor, hem değerli materyalleri kurtarıyoruz!`

const estimateValueText = `💰 Cihaz Değeri Hesaplama

Cihazınızın değerini öğrenmek için web uygulamasında fotoğraf yükleyin.

📊 Örnek Değerler:
📱 iPhone: 250-1500₺
💻 Laptop: 500-3000₺
⌚ Akıllı Saat: 100-800₺
📺 TV: 300-2000₺

💡 Değer şunlara bağlıdır:
• Marka ve model
• Durumu (çalışıyor mu?)
• Yaşı
• Aksesuarları

Web uygulaması: http://localhost:5173`

const reportProblemText = `😔 Üzgünüm, bir sorunla karşılaştınız.

Lütfen sorunu detaylı anlatır mısınız?

📝 Şunları belirtirseniz yardımcı olur:
• Ne yapmaya çalışıyordunuz?
• Hangi adımda hata oluştu?
• Aldığınız hata mesajı neydi?
• Hangi cihazı kullanıyorsunuz?

Alternatif İletişim:
📧 Email: support@ewasteheroes.com

Sorununuzu en kısa sürede çözeceğiz!`

const pointsUnavailableText = `❌ Toplama noktaları yüklenemedi. Servis çalışıyor mu kontrol edin.`

const impactUnavailableText = `❌ Etki istatistikleri yüklenemedi. Servis çalışıyor mu kontrol edin.`
