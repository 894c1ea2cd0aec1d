package session

// WelcomeText is shown when an interactive front end starts.
const WelcomeText = `Type anything in this window to translate it into morse code. Only letters and numbers will be translated. To translate from morse to english type in the morse window. The morse code needs to follow the rules below.

International Morse Code:

1. The length of a dot is one unit.
2. A dash is three units.
3. The space between parts of the same letter is one unit.
4. The space between letters is three units.
5. The space between words is seven units.

The morse window is showing this text translated to morse code.`
